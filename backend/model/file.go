package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ErrFileNotFound marks a point lookup that matched no row. Callers are
// expected to treat it as an absence, not a failure.
var ErrFileNotFound = errors.New("file not found")

// File represents one stored document. Size always equals the UTF-8 byte
// length of Content; every write path that touches Content recomputes it.
type File struct {
	Id           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"size:255;not null;index"`
	Content      string    `json:"content" gorm:"type:text"`
	DateCreated  time.Time `json:"date_created" gorm:"column:date_created;index;autoCreateTime"`
	DateModified time.Time `json:"date_modified" gorm:"column:date_modified;autoUpdateTime"`
	Owner        *string   `json:"owner" gorm:"size:100"`
	Memo         *string   `json:"memo" gorm:"type:text"`
	Size         int64     `json:"size" gorm:"default:0"`
}

func (File) TableName() string {
	return "files"
}

// FileSummary is the reduced projection used by list and search views.
// Size is already rendered human-readable.
type FileSummary struct {
	Id          int64     `json:"id"`
	Name        string    `json:"name"`
	DateCreated time.Time `json:"date_created"`
	Size        string    `json:"size"`
	HasMemo     bool      `json:"has_memo"`
}

// fileSummaryRow carries the raw byte size before rendering.
type fileSummaryRow struct {
	Id          int64
	Name        string
	DateCreated time.Time
	Size        int64
	HasMemo     bool
}

// FileUpdate carries the optional fields of a partial update. Nil means
// "leave untouched".
type FileUpdate struct {
	Name    *string `json:"name"`
	Content *string `json:"content"`
	Memo    *string `json:"memo"`
}

// CreateFile inserts a new file record and returns the generated id.
// Empty owner/memo are stored as NULL.
func CreateFile(name string, content string, owner string, memo string) (int64, error) {
	file := &File{
		Name:    name,
		Content: content,
		Size:    int64(len(content)),
	}
	if owner != "" {
		file.Owner = &owner
	}
	if memo != "" {
		file.Memo = &memo
	}
	if err := DB.Create(file).Error; err != nil {
		return 0, fmt.Errorf("create file %q: %w", name, err)
	}
	return file.Id, nil
}

// GetFileByID returns the full record, or ErrFileNotFound.
func GetFileByID(id int64) (*File, error) {
	var file File
	err := DB.First(&file, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get file %d: %w", id, err)
	}
	return &file, nil
}

const summaryColumns = "id, name, date_created, size, memo IS NOT NULL AS has_memo"

// GetAllFiles lists summaries of every file, newest first. Zero rows yield
// an empty slice, not nil.
func GetAllFiles() ([]FileSummary, error) {
	var rows []fileSummaryRow
	err := DB.Model(&File{}).
		Select(summaryColumns).
		Order("date_created DESC, id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return renderSummaries(rows), nil
}

// SearchFiles matches the term case-insensitively against name or content,
// with the same ordering and shape as GetAllFiles.
func SearchFiles(term string) ([]FileSummary, error) {
	like := "%" + strings.ToLower(term) + "%"
	var rows []fileSummaryRow
	err := DB.Model(&File{}).
		Select(summaryColumns).
		Where("LOWER(name) LIKE ? OR LOWER(content) LIKE ?", like, like).
		Order("date_created DESC, id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("search files for %q: %w", term, err)
	}
	return renderSummaries(rows), nil
}

func renderSummaries(rows []fileSummaryRow) []FileSummary {
	summaries := make([]FileSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, FileSummary{
			Id:          row.Id,
			Name:        row.Name,
			DateCreated: row.DateCreated,
			Size:        FormatFileSize(row.Size),
			HasMemo:     row.HasMemo,
		})
	}
	return summaries
}

// UpdateFile applies the supplied fields to one row and reports whether a
// row was affected. A content change recomputes size; date_modified is
// refreshed on any change. No supplied fields means no statement at all.
func UpdateFile(id int64, update FileUpdate) (bool, error) {
	updates := map[string]any{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Content != nil {
		updates["content"] = *update.Content
		updates["size"] = int64(len(*update.Content))
	}
	if update.Memo != nil {
		updates["memo"] = *update.Memo
	}
	if len(updates) == 0 {
		return false, nil
	}

	result := DB.Model(&File{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return false, fmt.Errorf("update file %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// DeleteFile removes one row and reports whether it existed.
func DeleteFile(id int64) (bool, error) {
	result := DB.Delete(&File{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("delete file %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatFileSize renders a byte count with one decimal place, dividing by
// 1024 while a larger unit remains. 1023 stays "1023.0B"; 1024 becomes
// "1.0KB".
func FormatFileSize(size int64) string {
	if size == 0 {
		return "0B"
	}
	value := float64(size)
	i := 0
	for value >= 1024 && i < len(sizeUnits)-1 {
		value /= 1024
		i++
	}
	return fmt.Sprintf("%.1f%s", value, sizeUnits[i])
}
