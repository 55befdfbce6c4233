package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"cybercrime-report-service/config"
	"cybercrime-report-service/models"
	"cybercrime-report-service/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 证据相关的业务错误
var (
	ErrNoFilesProvided = errors.New("no files provided")
	ErrFileSaveFailed  = errors.New("failed to save file")
)

// EvidenceInfo 证据文件的展示信息
type EvidenceInfo struct {
	ID           uint            `json:"id"`
	Filename     string          `json:"filename"`
	OriginalName string          `json:"original_name"`
	ContentType  string          `json:"content_type"`
	FileSize     int64           `json:"file_size"`
	Description  string          `json:"description"`
	UploadDate   models.JSONTime `json:"upload_date"`
}

// OfficerEvidenceRow 警员证据库视图，带案件上下文
type OfficerEvidenceRow struct {
	EvidenceInfo
	CaseID     uint   `json:"case_id"`
	CrimeType  string `json:"crime_type"`
	CaseStatus string `json:"case_status"`
	VictimName string `json:"victim_name"`
}

// InterfaceEvidenceService 定义证据服务接口
type InterfaceEvidenceService interface {
	SaveFiles(reportID, uploaderID uint, description string, files []*multipart.FileHeader) ([]models.Evidence, error)
	ListByReport(reportID uint) ([]EvidenceInfo, error)
	ListByOfficer(officerID uint) ([]OfficerEvidenceRow, error)
	ResolveFile(filename string) (string, error)
}

// EvidenceService 提供证据文件相关的服务
type EvidenceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEvidenceService 创建一个新的证据服务
func NewEvidenceService(db *gorm.DB, cfg *config.Config) InterfaceEvidenceService {
	return &EvidenceService{
		DB:     db,
		Config: cfg,
	}
}

// 1. SaveFiles 保存上传的证据文件并落库。
// 存储名为 "<reportID>_<净化后原名>"，重名时追加 uuid 前缀。
func (s *EvidenceService) SaveFiles(reportID, uploaderID uint, description string, files []*multipart.FileHeader) ([]models.Evidence, error) {
	if len(files) == 0 {
		return nil, ErrNoFilesProvided
	}
	if err := os.MkdirAll(s.Config.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileSaveFailed, err)
	}

	saved := make([]models.Evidence, 0, len(files))
	for _, fh := range files {
		sanitized := utils.SanitizeFilename(fh.Filename)
		if sanitized == "" {
			continue
		}
		storedName := fmt.Sprintf("%d_%s", reportID, sanitized)
		destPath := filepath.Join(s.Config.UploadDir, storedName)
		if _, err := os.Stat(destPath); err == nil {
			storedName = fmt.Sprintf("%s_%d_%s", uuid.NewString()[:8], reportID, sanitized)
			destPath = filepath.Join(s.Config.UploadDir, storedName)
		}

		if err := writeUploadedFile(fh, destPath); err != nil {
			config.Error(fmt.Sprintf("保存证据文件失败: %v", err))
			return nil, fmt.Errorf("%w: %s", ErrFileSaveFailed, fh.Filename)
		}

		record := models.Evidence{
			ReportID:     reportID,
			Filename:     storedName,
			OriginalName: fh.Filename,
			FilePath:     destPath,
			FileSize:     fh.Size,
			ContentType:  fh.Header.Get("Content-Type"),
			UploadedBy:   uploaderID,
			Description:  description,
		}
		if err := s.DB.Create(&record).Error; err != nil {
			os.Remove(destPath)
			return nil, err
		}
		saved = append(saved, record)
	}

	if len(saved) == 0 {
		return nil, ErrNoFilesProvided
	}
	return saved, nil
}

// writeUploadedFile 把 multipart 文件写入目标路径
func writeUploadedFile(fh *multipart.FileHeader, destPath string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// 2. ListByReport 列出举报下的证据文件
func (s *EvidenceService) ListByReport(reportID uint) ([]EvidenceInfo, error) {
	items := make([]EvidenceInfo, 0)
	err := s.DB.Table("evidence").
		Select("id, filename, original_name, content_type, file_size, description, upload_date").
		Where("report_id = ?", reportID).
		Order("upload_date DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// 3. ListByOfficer 警员证据库：名下所有案件的证据汇总
func (s *EvidenceService) ListByOfficer(officerID uint) ([]OfficerEvidenceRow, error) {
	rows := make([]OfficerEvidenceRow, 0)
	err := s.DB.Table("evidence").
		Select("evidence.id, evidence.filename, evidence.original_name, evidence.content_type, "+
			"evidence.file_size, evidence.description, evidence.upload_date, "+
			"reports.id AS case_id, reports.crime_type, reports.status AS case_status, "+
			"victims.name AS victim_name").
		Joins("JOIN reports ON reports.id = evidence.report_id").
		Joins("JOIN users AS victims ON victims.id = reports.victim_id").
		Where("reports.assigned_officer_id = ?", officerID).
		Order("evidence.upload_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// 4. ResolveFile 按存储名定位磁盘路径，路径穿越的文件名直接拒绝
func (s *EvidenceService) ResolveFile(filename string) (string, error) {
	cleaned := filepath.Base(filename)
	if cleaned != filename || cleaned == "." || cleaned == ".." {
		return "", os.ErrNotExist
	}
	path := filepath.Join(s.Config.UploadDir, cleaned)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}
