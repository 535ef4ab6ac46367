package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"skillpath_backend/internal/config"
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/util"
	"skillpath_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxResumeBytes = 5 << 20

type ResumeService struct {
	Repo    ResumeStore
	Storage StorageProvider
	AI      CompletionProvider
	Model   string
}

type ResumeStore interface {
	Create(a *model.ResumeAnalysis) error
	FindByID(id uint) (*model.ResumeAnalysis, error)
	ListByUser(userID uint, page, limit int) ([]model.ResumeAnalysis, int64, error)
}

func NewResumeService(repo ResumeStore, storage StorageProvider, ai CompletionProvider, cfg config.AIConfig) *ResumeService {
	return &ResumeService{Repo: repo, Storage: storage, AI: ai, Model: cfg.Model}
}

type AnalyzeResumeRequest struct {
	Content    string `json:"content"`
	TargetRole string `json:"targetRole"`
}

// Upload stores the resume file and returns its URL. Only text-like
// formats are accepted.
func (s *ResumeService) Upload(ctx context.Context, header *multipart.FileHeader) (string, error) {
	if header.Size > maxResumeBytes {
		return "", fmt.Errorf("%w: file exceeds %d bytes", util.ErrInvalidInput, maxResumeBytes)
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	allowed := false
	for _, e := range util.AllowedResumeExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", fmt.Errorf("%w: unsupported file type %q", util.ErrInvalidInput, ext)
	}

	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	name := fmt.Sprintf("resumes/%s/%s%s", time.Now().Format("2006/01"), uuid.NewString(), ext)
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}
	return s.Storage.Upload(ctx, name, f, header.Size, contentType)
}

// Analyze runs the resume text through the completion provider and
// persists the result.
func (s *ResumeService) Analyze(ctx context.Context, userID *uint, req AnalyzeResumeRequest) (*model.ResumeAnalysis, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: resume content is required", util.ErrInvalidInput)
	}

	var b strings.Builder
	b.WriteString("Review the following resume and return: strengths, gaps, and three concrete improvements.\n")
	if req.TargetRole != "" {
		b.WriteString("Target role: " + req.TargetRole + "\n")
	}
	b.WriteString("\nResume:\n" + content)

	analysis, err := s.AI.Complete(ctx, b.String())
	if err != nil {
		return nil, err
	}

	record := &model.ResumeAnalysis{
		UserID:     userID,
		TargetRole: req.TargetRole,
		Content:    content,
		Analysis:   analysis,
		Model:      s.Model,
	}
	if err := s.Repo.Create(record); err != nil {
		return nil, err
	}

	logger.Log.Info("resume analyzed", zap.Uint("analysisId", record.ID))
	return record, nil
}

// History pages through a user's past analyses.
func (s *ResumeService) History(userID uint, page, limit int) ([]model.ResumeAnalysis, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.Repo.ListByUser(userID, page, limit)
}
