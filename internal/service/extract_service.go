package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

// ExtractService saves admin uploads and turns documents into knowledge
// base content: go-fitz pulls raw text out of PDFs, the LLM structures it.
type ExtractService struct {
	llmService *LLMService
	uploadDir  string
	logger     *zap.Logger
}

func NewExtractService(llmService *LLMService, uploadDir string, logger *zap.Logger) *ExtractService {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		logger.Warn("Failed to create upload directory", zap.Error(err))
	}

	return &ExtractService{
		llmService: llmService,
		uploadDir:  uploadDir,
		logger:     logger,
	}
}

// SaveUpload stores a file under a generated name and returns its public URL.
func (s *ExtractService) SaveUpload(file io.Reader, fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	newFileName := uuid.New().String() + ext
	filePath := filepath.Join(s.uploadDir, newFileName)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, file)
	if err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	s.logger.Info("File uploaded",
		zap.String("file", fileName),
		zap.String("stored_as", newFileName),
		zap.Int64("size", size),
	)

	return "/uploads/" + newFileName, nil
}

// ExtractStructured reads a previously uploaded document and returns the
// structured content for a knowledge item.
func (s *ExtractService) ExtractStructured(ctx context.Context, fileURL string) (map[string]string, error) {
	filePath, err := s.resolveUpload(fileURL)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filePath))

	var text string
	switch ext {
	case ".pdf":
		text, err = s.extractTextFromPDF(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from PDF: %w", err)
		}
	case ".txt", ".md", ".csv":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		text = string(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}

	text = sanitizeUTF8(strings.TrimSpace(text))
	if text == "" {
		return nil, fmt.Errorf("no text extracted from %s", filepath.Base(filePath))
	}

	content, err := s.llmService.ExtractContent(ctx, text)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Document extraction completed",
		zap.String("file", filepath.Base(filePath)),
		zap.Int("raw_length", len(text)),
		zap.Int("content_length", len(content)),
	)

	return map[string]string{"content": content}, nil
}

func (s *ExtractService) extractTextFromPDF(pdfPath string) (string, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var textBuilder strings.Builder

	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			s.logger.Warn("Failed to extract text from page",
				zap.Int("page", i+1),
				zap.String("file", pdfPath),
				zap.Error(err),
			)
			continue
		}

		if pageText != "" {
			textBuilder.WriteString(pageText)
			textBuilder.WriteString("\n")
		}
	}

	text := strings.TrimSpace(textBuilder.String())
	if text == "" {
		return "", fmt.Errorf("no text found in PDF")
	}

	return text, nil
}

// resolveUpload maps a /uploads/ URL back onto the upload directory,
// rejecting anything that escapes it.
func (s *ExtractService) resolveUpload(fileURL string) (string, error) {
	name := strings.TrimPrefix(fileURL, "/uploads/")
	if name == fileURL || name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid file url: %s", fileURL)
	}
	return filepath.Join(s.uploadDir, name), nil
}
