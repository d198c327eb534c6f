package services

import (
	"errors"
	"fmt"
	"io"

	"github.com/alimgiray/ghprofile/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	profileSheet      = "Profile"
	repositoriesSheet = "Repositories"
)

// ErrNothingToExport is returned when no search result is displayed
var ErrNothingToExport = errors.New("no search result to export")

// ExportService writes search results as xlsx workbooks
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// WriteWorkbook writes the profile and repository sheets of result to w
func (s *ExportService) WriteWorkbook(w io.Writer, result *models.SearchResult) error {
	f, err := s.buildWorkbook(result)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveWorkbook writes the workbook for result to path
func (s *ExportService) SaveWorkbook(path string, result *models.SearchResult) error {
	f, err := s.buildWorkbook(result)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook to %s: %w", path, err)
	}
	return nil
}

// Filename returns the download name for a result's workbook
func (s *ExportService) Filename(result *models.SearchResult) string {
	if result == nil || result.Profile == nil || result.Profile.Login == "" {
		return "github-profile.xlsx"
	}
	return fmt.Sprintf("%s-github-profile.xlsx", result.Profile.Login)
}

func (s *ExportService) buildWorkbook(result *models.SearchResult) (*excelize.File, error) {
	if result == nil || result.Profile == nil {
		return nil, ErrNothingToExport
	}

	f := excelize.NewFile()
	if err := s.fillWorkbook(f, result); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func (s *ExportService) fillWorkbook(f *excelize.File, result *models.SearchResult) error {
	// NewFile starts with a single "Sheet1"
	if err := f.SetSheetName("Sheet1", profileSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(repositoriesSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	profile := result.Profile
	profileRows := [][]interface{}{
		{"Login", profile.Login},
		{"Name", profile.Name},
		{"Bio", profile.Bio},
		{"Followers", profile.Followers},
		{"Following", profile.Following},
		{"Location", stringOrEmpty(profile.Location)},
		{"Profile URL", profile.HTMLURL},
		{"Avatar URL", profile.AvatarURL},
	}
	for i, row := range profileRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(profileSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write profile row: %w", err)
		}
	}
	if err := f.SetCellStyle(profileSheet, "A1", fmt.Sprintf("A%d", len(profileRows)), headerStyle); err != nil {
		return fmt.Errorf("failed to style profile sheet: %w", err)
	}
	if err := f.SetColWidth(profileSheet, "A", "A", 14); err != nil {
		return fmt.Errorf("failed to size profile sheet: %w", err)
	}
	if err := f.SetColWidth(profileSheet, "B", "B", 60); err != nil {
		return fmt.Errorf("failed to size profile sheet: %w", err)
	}

	header := []interface{}{"ID", "Name", "Description", "Stars", "Forks", "URL"}
	if err := f.SetSheetRow(repositoriesSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write repository header: %w", err)
	}
	if err := f.SetCellStyle(repositoriesSheet, "A1", "F1", headerStyle); err != nil {
		return fmt.Errorf("failed to style repository header: %w", err)
	}

	for i, repo := range result.Repositories {
		rowNum := i + 2
		row := []interface{}{
			repo.ID,
			repo.Name,
			stringOrEmpty(repo.Description),
			repo.StargazersCount,
			repo.ForksCount,
			repo.HTMLURL,
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(repositoriesSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write repository %s: %w", repo.Name, err)
		}
		if repo.HTMLURL != "" {
			linkCell, _ := excelize.CoordinatesToCellName(6, rowNum)
			if err := f.SetCellHyperLink(repositoriesSheet, linkCell, repo.HTMLURL, "External"); err != nil {
				return fmt.Errorf("failed to link repository %s: %w", repo.Name, err)
			}
		}
	}
	if err := f.SetColWidth(repositoriesSheet, "B", "C", 40); err != nil {
		return fmt.Errorf("failed to size repository sheet: %w", err)
	}

	return nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
