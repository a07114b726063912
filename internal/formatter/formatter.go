// package formatter provides functions to export election data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/desertthunder/elx/internal/models"
	"github.com/desertthunder/elx/internal/shared"
)

// ExportCampaignsToCSV converts a candidate's campaigns to CSV format with columns: ID, Title, Status, Events, Materials, Created
func ExportCampaignsToCSV(campaigns []models.Campaign) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Status", "Events", "Materials", "Created"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, campaign := range campaigns {
		created := ""
		if !campaign.CreatedAt.IsZero() {
			created = campaign.CreatedAt.Format("2006-01-02")
		}
		record := []string{
			campaign.ID,
			campaign.Title,
			string(campaign.Status),
			strconv.Itoa(len(campaign.Events)),
			strconv.Itoa(len(campaign.Materials)),
			created,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportProgramToMarkdown converts an electoral program to Markdown format
func ExportProgramToMarkdown(program *models.Program, candidateName string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", program.Title))

	if candidateName != "" {
		buf.WriteString(fmt.Sprintf("**Candidate**: %s\n", candidateName))
	}
	if program.GeneratedByAI {
		buf.WriteString("**Generated**: AI assisted\n")
	}
	if !program.CreatedAt.IsZero() {
		buf.WriteString(fmt.Sprintf("**Date**: %s\n", program.CreatedAt.Format("2006-01-02")))
	}

	buf.WriteString(fmt.Sprintf("\n%s\n", program.Content))

	return buf.Bytes(), nil
}

// ExportProgramToText converts an electoral program to plain text format
func ExportProgramToText(program *models.Program) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Program: %s\n", program.Title))
	if program.GeneratedByAI {
		buf.WriteString("Generated by AI\n")
	}
	buf.WriteString(fmt.Sprintf("\n%s\n", program.Content))

	return buf.Bytes(), nil
}

// ToMetadataJSON generates a JSON representation of a program without its content
func ToMetadataJSON(program models.Program) ([]byte, error) {
	program.Content = ""
	return shared.MarshalJSON(program, true)
}

// CSVExportResult contains the path of the file created by WriteCampaignCSVExport
type CSVExportResult struct {
	CampaignsFile string
}

// WriteCampaignCSVExport exports a candidate's campaigns to a CSV file.
//
// Defaults to the candidate ID as the base filename & creates {base}_campaigns.csv
func WriteCampaignCSVExport(campaigns []models.Campaign, candidateID, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = candidateID
	}

	csvData, err := ExportCampaignsToCSV(campaigns)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	campaignsFile := baseFilepath + "_campaigns.csv"
	if err := os.WriteFile(campaignsFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	return &CSVExportResult{CampaignsFile: campaignsFile}, nil
}

// MarkdownExportResult contains information about files created by WriteProgramMarkdownExport
type MarkdownExportResult struct {
	Directory string
	Files     []string
}

// WriteProgramMarkdownExport exports a program to Markdown in a dedicated directory.
//
// Directory name defaults to the program ID.
// Creates a directory structure: {dir}/README.md and {dir}/metadata.json
func WriteProgramMarkdownExport(program *models.Program, candidateName, outputDir string) (*MarkdownExportResult, error) {
	if outputDir == "" {
		outputDir = program.ID
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	result := &MarkdownExportResult{
		Directory: outputDir,
		Files:     []string{},
	}

	mdData, err := ExportProgramToMarkdown(program, candidateName)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := fmt.Sprintf("%s/README.md", outputDir)
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write Markdown file: %w", err)
	}
	result.Files = append(result.Files, mdFile)

	metadataJSON, err := ToMetadataJSON(*program)
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := fmt.Sprintf("%s/metadata.json", outputDir)
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}
	result.Files = append(result.Files, metadataFile)

	return result, nil
}

// WriteProgramTextExport exports a program to plain text format.
//
// Defaults to {program.ID}_program.txt as the filename.
func WriteProgramTextExport(program *models.Program, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s_program.txt", program.ID)
	}

	textData, err := ExportProgramToText(program)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}
