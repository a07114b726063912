package formatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/elx/internal/models"
	th "github.com/desertthunder/elx/internal/testing"
)

func sampleProgram() *models.Program {
	return &models.Program{
		ID:            "prog1",
		CandidateID:   "c1",
		Title:         "Electoral Program 2026-06-01",
		Content:       "1. Better canteen\n2. More school events",
		GeneratedByAI: true,
		CreatedAt:     time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func sampleCampaigns() []models.Campaign {
	return []models.Campaign{
		{
			ID:        "cam1",
			Title:     "Better canteen",
			Status:    models.CampaignActive,
			Events:    []map[string]any{{"name": "Kickoff"}},
			Materials: []map[string]any{},
			CreatedAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:     "cam2",
			Title:  "Green school",
			Status: models.CampaignDraft,
		},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportCampaignsToCSV", func(t *testing.T) {
		data, err := ExportCampaignsToCSV(sampleCampaigns())
		if err != nil {
			t.Fatalf("ExportCampaignsToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "ID,Title,Status,Events,Materials,Created") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "cam1") {
			t.Errorf("CSV missing campaign id")
		}
		if !strings.Contains(output, "Better canteen") {
			t.Errorf("CSV missing campaign title")
		}
		if !strings.Contains(output, "active") {
			t.Errorf("CSV missing campaign status")
		}
		if !strings.Contains(output, "2026-05-01") {
			t.Errorf("CSV missing created date")
		}
	})

	t.Run("ExportProgramToMarkdown", func(t *testing.T) {
		t.Run("with candidate name", func(t *testing.T) {
			data, err := ExportProgramToMarkdown(sampleProgram(), "Ada")
			if err != nil {
				t.Fatalf("ExportProgramToMarkdown failed: %v", err)
			}

			output := string(data)
			if !strings.Contains(output, "# Electoral Program 2026-06-01") {
				t.Errorf("Markdown missing title heading, got: %s", output)
			}
			if !strings.Contains(output, "**Candidate**: Ada") {
				t.Errorf("Markdown missing candidate line")
			}
			if !strings.Contains(output, "AI assisted") {
				t.Errorf("Markdown missing generation note")
			}
			if !strings.Contains(output, "Better canteen") {
				t.Errorf("Markdown missing program content")
			}
		})

		t.Run("without candidate name", func(t *testing.T) {
			data, err := ExportProgramToMarkdown(sampleProgram(), "")
			if err != nil {
				t.Fatalf("ExportProgramToMarkdown failed: %v", err)
			}
			if strings.Contains(string(data), "**Candidate**") {
				t.Errorf("Markdown should omit candidate line when name is empty")
			}
		})
	})

	t.Run("ExportProgramToText", func(t *testing.T) {
		data, err := ExportProgramToText(sampleProgram())
		if err != nil {
			t.Fatalf("ExportProgramToText failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "Program: Electoral Program 2026-06-01") {
			t.Errorf("text missing title line, got: %s", output)
		}
		if !strings.Contains(output, "Generated by AI") {
			t.Errorf("text missing generation note")
		}
		if !strings.Contains(output, "More school events") {
			t.Errorf("text missing content")
		}
	})

	t.Run("ToMetadataJSON", func(t *testing.T) {
		data, err := ToMetadataJSON(*sampleProgram())
		if err != nil {
			t.Fatalf("ToMetadataJSON failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, `"id": "prog1"`) {
			t.Errorf("metadata missing id, got: %s", output)
		}
		if strings.Contains(output, "Better canteen") {
			t.Errorf("metadata must not include program content")
		}
	})
}

func TestWriters(t *testing.T) {
	t.Run("WriteCampaignCSVExport", func(t *testing.T) {
		dir := t.TempDir()
		base := filepath.Join(dir, "export")

		result, err := WriteCampaignCSVExport(sampleCampaigns(), "c1", base)
		if err != nil {
			t.Fatalf("WriteCampaignCSVExport failed: %v", err)
		}

		th.AssertFileExists(t, result.CampaignsFile)
		if result.CampaignsFile != base+"_campaigns.csv" {
			t.Errorf("unexpected filename: %s", result.CampaignsFile)
		}
	})

	t.Run("WriteProgramMarkdownExport", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "prog-export")

		result, err := WriteProgramMarkdownExport(sampleProgram(), "Ada", dir)
		if err != nil {
			t.Fatalf("WriteProgramMarkdownExport failed: %v", err)
		}

		if result.Directory != dir {
			t.Errorf("unexpected directory: %s", result.Directory)
		}
		if len(result.Files) != 2 {
			t.Fatalf("expected 2 files, got %v", result.Files)
		}
		th.AssertFileExists(t, filepath.Join(dir, "README.md"))
		th.AssertFileExists(t, filepath.Join(dir, "metadata.json"))
	})

	t.Run("WriteProgramTextExport", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "program.txt")

		written, err := WriteProgramTextExport(sampleProgram(), path)
		if err != nil {
			t.Fatalf("WriteProgramTextExport failed: %v", err)
		}
		if written != path {
			t.Errorf("expected %s, got %s", path, written)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read exported file: %v", err)
		}
		if !strings.Contains(string(data), "Electoral Program") {
			t.Errorf("exported file missing content")
		}
	})
}
