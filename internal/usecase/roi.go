package usecase

import (
	"context"
	"time"

	"github.com/aviniti/ai-tools-api/internal/adapter/observability"
	"github.com/aviniti/ai-tools-api/internal/domain"
	"github.com/aviniti/ai-tools-api/internal/prompt"
	"github.com/aviniti/ai-tools-api/pkg/textx"
)

const maxCustomProcessLen = 200

// ROI projects savings and payback for replacing a manual process with an
// app.
func (s *ToolsService) ROI(ctx context.Context, req domain.ROIRequest) (*domain.ROIResponse, error) {
	started := time.Now()

	req.CustomProcess = textx.Sanitize(req.CustomProcess, maxCustomProcessLen)
	// CustomProcess is the only free description of an "other" process, so it
	// must survive sanitization in that case.
	if req.ProcessType == "other" {
		if err := requireText("customProcess", req.CustomProcess); err != nil {
			return nil, err
		}
	}
	lang := resolveLang(req.Locale, req.CustomProcess)

	spec := prompt.BuildROI(req, lang)
	resp, err := generate(ctx, s, domain.ToolROI, spec, s.schema.DecodeROI)
	if err != nil {
		observability.ToolRequestsTotal.WithLabelValues(string(domain.ToolROI), "error").Inc()
		return nil, err
	}

	observability.ToolRequestsTotal.WithLabelValues(string(domain.ToolROI), "ok").Inc()
	s.persist(domain.ToolROI, req, resp, lang, started)
	return resp, nil
}
