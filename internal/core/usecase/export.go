package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"isogen/internal/core/docgen"
	"isogen/internal/core/domain"
	"isogen/internal/core/ports"
)

const (
	FormatPrint = "print"
	FormatWord  = "word"
)

type ExportUseCase struct {
	repo     ports.DocumentRepository
	exporter ports.DocumentExporter
	overview ports.OverviewExporter
}

func NewExportUseCase(repo ports.DocumentRepository, exporter ports.DocumentExporter, overview ports.OverviewExporter) *ExportUseCase {
	return &ExportUseCase{
		repo:     repo,
		exporter: exporter,
		overview: overview,
	}
}

// Export wraps the document buffer for download. Unresolved placeholder
// tokens stay literal unless strict mode is requested, in which case the
// export fails and names them.
func (uc *ExportUseCase) Export(ctx context.Context, userID, documentID, format string, strict bool) (*ports.ExportResult, error) {
	doc, err := uc.repo.GetByID(ctx, userID, documentID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	if strict {
		if unresolved := docgen.UnresolvedTokens(doc.EditableContent); len(unresolved) > 0 {
			return nil, domain.WrapError(domain.ErrInvalidInput, "export.Export",
				fmt.Errorf("unresolved placeholders: %s", strings.Join(unresolved, ", ")))
		}
	}

	switch format {
	case FormatPrint:
		return &ports.ExportResult{
			Filename:    fmt.Sprintf("%s.html", doc.Title),
			ContentType: "text/html; charset=utf-8",
			Data:        uc.exporter.Print(doc.Title, doc.EditableContent),
		}, nil
	case FormatWord:
		return &ports.ExportResult{
			Filename:    wordFilename(doc.Type, time.Now().UTC()),
			ContentType: "application/msword",
			Data:        uc.exporter.Word(doc.Title, doc.EditableContent),
		}, nil
	default:
		return nil, domain.WrapError(domain.ErrInvalidInput, "export.Export", fmt.Errorf("unknown format %q", format))
	}
}

func (uc *ExportUseCase) Overview(ctx context.Context, userID string) (*ports.ExportResult, error) {
	docs, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	data, err := uc.overview.Overview(docs)
	if err != nil {
		return nil, fmt.Errorf("render overview: %w", err)
	}
	return &ports.ExportResult{
		Filename:    fmt.Sprintf("documenten-overzicht-%s.xlsx", time.Now().UTC().Format("2006-01-02")),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        data,
	}, nil
}

func (uc *ExportUseCase) Analysis(ctx context.Context, userID, documentID string) (*ports.DocumentAnalysis, error) {
	doc, err := uc.repo.GetByID(ctx, userID, documentID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	analysis := docgen.Analyze(doc.EditableContent)
	chapters := make(map[string]string, len(analysis.Chapters))
	for id, state := range analysis.Chapters {
		chapters[id] = string(state)
	}
	return &ports.DocumentAnalysis{
		WordCount:            analysis.WordCount,
		CompletionPercentage: analysis.CompletionPercentage,
		EmptySections:        analysis.EmptySections,
		Chapters:             chapters,
	}, nil
}

// wordFilename mirrors the download name users see in the product, e.g.
// ISO-9001-Kwaliteitshandboek-2026-02-10.doc.
func wordFilename(docType string, now time.Time) string {
	return fmt.Sprintf("%s-Kwaliteitshandboek-%s.doc",
		strings.ReplaceAll(docType, " ", "-"), now.Format("2006-01-02"))
}
