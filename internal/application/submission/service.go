// Package submission is the application layer over the submission engine:
// it decodes request payloads, runs the engine and records logs, spans and
// metrics for every operation.
package submission

import (
	"context"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/interiors/backend/internal/domain/shared"
	"github.com/interiors/backend/internal/domain/submission"
	"github.com/interiors/backend/internal/infrastructure/logger"
	"github.com/interiors/backend/internal/infrastructure/telemetry"
)

const spanService = "submission"

// Operation names used for logs, spans and duration metrics
const (
	OpClassify      = "classify"
	OpRender        = "render"
	OpExtract       = "extract_materials"
	OpMaterialOrder = "material_order"
	OpMarkNA        = "mark_na"
)

// Metrics receives engine outcome counts. *metrics.Recorder implements it.
type Metrics interface {
	Classified(kind, rule string)
	Rendered(kind string)
	Extracted(section string, items int)
	MaterialOrderBuilt(section string)
	Reset(tag string, known bool)
	ObserveDuration(operation string, start time.Time)
}

type nopMetrics struct{}

func (nopMetrics) Classified(string, string)         {}
func (nopMetrics) Rendered(string)                   {}
func (nopMetrics) Extracted(string, int)             {}
func (nopMetrics) MaterialOrderBuilt(string)         {}
func (nopMetrics) Reset(string, bool)                {}
func (nopMetrics) ObserveDuration(string, time.Time) {}

// Option configures a SubmissionService
type Option func(*SubmissionService)

// WithMetrics sets the metrics sink
func WithMetrics(m Metrics) Option {
	return func(s *SubmissionService) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithClock overrides the clock used for default order dates
func WithClock(now func() time.Time) Option {
	return func(s *SubmissionService) {
		s.now = now
	}
}

// WithFormatterOptions sets the display conventions
func WithFormatterOptions(opts submission.FormatterOptions) Option {
	return func(s *SubmissionService) {
		s.partitioner = submission.NewPartitioner(submission.NewFormatter(opts))
	}
}

// SubmissionService runs engine operations on behalf of the HTTP API and CLI.
// It holds no mutable state and is safe for concurrent use.
type SubmissionService struct {
	partitioner submission.Partitioner
	metrics     Metrics
	logger      *zap.Logger
	now         func() time.Time
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(log *zap.Logger, opts ...Option) *SubmissionService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &SubmissionService{
		partitioner: submission.NewPartitioner(submission.NewFormatter(submission.DefaultFormatterOptions())),
		metrics:     nopMetrics{},
		logger:      log,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// log prefers the request-scoped logger carried by ctx
func (s *SubmissionService) log(ctx context.Context) *logger.ContextLogger {
	if l, ok := ctx.Value(logger.LoggerKey).(*zap.Logger); ok {
		return logger.WithLogger(ctx, l)
	}
	return logger.WithLogger(ctx, s.logger)
}

// Classify resolves the kind of a submission
func (s *SubmissionService) Classify(ctx context.Context, req ClassifyRequest) (*ClassifyResponse, error) {
	defer s.metrics.ObserveDuration(OpClassify, time.Now())
	ctx = logger.WithOperation(ctx, OpClassify)
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, OpClassify)
	defer span.End()

	raw := submission.ParseRawSubmission(req.FormData)
	c := submission.Explain(raw)

	telemetry.SetAttributes(span,
		telemetry.SpanAttrKind, string(c.Kind),
		telemetry.SpanAttrRule, string(c.Rule),
		telemetry.SpanAttrFieldCount, len(raw),
	)
	s.metrics.Classified(string(c.Kind), string(c.Rule))

	ctx = logger.WithSubmissionKind(ctx, string(c.Kind))
	s.log(ctx).Debug("Submission classified",
		zap.String("rule", string(c.Rule)),
		zap.String("discriminator", c.Discriminator),
		zap.Int("fields", len(raw)),
	)

	return &ClassifyResponse{
		Kind:          string(c.Kind),
		Title:         c.Kind.Title(),
		Rule:          string(c.Rule),
		Discriminator: c.Discriminator,
	}, nil
}

// Render partitions a submission into formatted display sections
func (s *SubmissionService) Render(ctx context.Context, req RenderRequest) (*RenderResponse, error) {
	defer s.metrics.ObserveDuration(OpRender, time.Now())
	ctx = logger.WithOperation(ctx, OpRender)
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, OpRender)
	defer span.End()

	raw := submission.ParseRawSubmission(req.FormData)

	kind := submission.Kind(req.Kind)
	if req.Kind == "" {
		c := submission.Explain(raw)
		kind = c.Kind
		s.metrics.Classified(string(c.Kind), string(c.Rule))
		telemetry.SetAttributes(span, telemetry.SpanAttrRule, string(c.Rule))
	} else if !kind.IsValid() {
		err := shared.NewDomainError("INVALID_KIND", "Unknown submission kind: "+req.Kind)
		telemetry.RecordError(span, err)
		return nil, err
	}

	rendering := submission.Rendering{
		Kind:     kind,
		Title:    kind.Title(),
		Sections: s.partitioner.Partition(raw, kind, submission.RenderOptions{CanEdit: req.CanEdit}),
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrKind, string(kind),
		telemetry.SpanAttrFieldCount, len(raw),
		telemetry.SpanAttrSectionCount, len(rendering.Sections),
	)
	s.metrics.Rendered(string(kind))

	ctx = logger.WithSubmissionKind(ctx, string(kind))
	s.log(ctx).Info("Submission rendered",
		zap.Int("sections", len(rendering.Sections)),
		zap.Bool("can_edit", req.CanEdit),
	)

	return toRenderResponse(rendering), nil
}

// ExtractMaterials returns the material line items of one section
func (s *SubmissionService) ExtractMaterials(ctx context.Context, req ExtractMaterialsRequest) (*ExtractMaterialsResponse, error) {
	defer s.metrics.ObserveDuration(OpExtract, time.Now())
	ctx = logger.WithOperation(ctx, OpExtract)
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, OpExtract)
	defer span.End()

	raw := submission.ParseRawSubmission(req.FormData)
	supported := submission.HasExtractionRule(req.SectionTitle)
	items := submission.ExtractMaterials(req.SectionTitle, raw)

	telemetry.SetAttributes(span,
		telemetry.SpanAttrSectionTitle, req.SectionTitle,
		telemetry.SpanAttrItemCount, len(items),
	)
	s.metrics.Extracted(req.SectionTitle, len(items))

	if !supported {
		s.log(ctx).Warn("No extraction rule for section", zap.String("section", req.SectionTitle))
	} else {
		s.log(ctx).Info("Materials extracted",
			zap.String("section", req.SectionTitle),
			zap.Int("items", len(items)),
		)
	}

	return &ExtractMaterialsResponse{
		SectionTitle: req.SectionTitle,
		Supported:    supported,
		Items:        items,
	}, nil
}

// CreateMaterialOrder drafts the procurement payload for a section. It does
// not submit the order anywhere.
func (s *SubmissionService) CreateMaterialOrder(ctx context.Context, req CreateMaterialOrderRequest) (*MaterialOrderResponse, error) {
	defer s.metrics.ObserveDuration(OpMaterialOrder, time.Now())
	ctx = logger.WithOperation(ctx, OpMaterialOrder)
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, OpMaterialOrder)
	defer span.End()

	raw := submission.ParseRawSubmission(req.FormData)

	items := req.Items
	if len(items) == 0 {
		if !submission.HasExtractionRule(req.SectionTitle) {
			telemetry.RecordError(span, shared.ErrUnknownSection)
			return nil, shared.ErrUnknownSection
		}
		items = submission.ExtractMaterials(req.SectionTitle, raw)
		telemetry.AddEvent(span, "items_extracted", telemetry.SpanAttrItemCount, len(items))
	}
	items = removeItems(items, req.RemoveItems)

	order, err := submission.BuildMaterialOrder(raw, submission.MaterialOrderInput{
		SectionTitle:         req.SectionTitle,
		Items:                items,
		SupplierName:         req.SupplierName,
		EstimatedCost:        req.EstimatedCost,
		OrderDate:            req.OrderDate,
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
		Notes:                req.Notes,
	}, s.now())
	if err != nil {
		telemetry.RecordError(span, err)
		s.log(ctx).Warn("Material order rejected",
			zap.String("section", req.SectionTitle),
			zap.Error(err),
		)
		return nil, err
	}

	kept := nonBlank(items)
	telemetry.SetAttributes(span,
		telemetry.SpanAttrSectionTitle, req.SectionTitle,
		telemetry.SpanAttrItemCount, len(kept),
	)
	telemetry.SetOK(span)
	s.metrics.MaterialOrderBuilt(req.SectionTitle)

	s.log(ctx).Info("Material order drafted",
		zap.String("section", req.SectionTitle),
		zap.Int("items", len(kept)),
		zap.String("order_date", order.OrderDate),
	)

	return toMaterialOrderResponse(order, kept), nil
}

// MarkNotApplicable returns the Mark N/A patch for a section tag and, when
// form data is supplied, the data with the patch applied.
func (s *SubmissionService) MarkNotApplicable(ctx context.Context, req MarkNotApplicableRequest) (*MarkNotApplicableResponse, error) {
	defer s.metrics.ObserveDuration(OpMarkNA, time.Now())
	ctx = logger.WithOperation(ctx, OpMarkNA)
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, OpMarkNA)
	defer span.End()

	tag := submission.SectionTag(req.SectionTag)
	known := tag.IsValid()
	patch := submission.MarkNotApplicable(tag)

	resp := &MarkNotApplicableResponse{
		SectionTag: req.SectionTag,
		Known:      known,
		Fields:     submission.FieldsFor(tag),
		Patch:      patch,
	}
	if len(req.FormData) > 0 {
		resp.Merged = submission.ParseRawSubmission(req.FormData).Merge(patch)
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrSectionTag, req.SectionTag,
		telemetry.SpanAttrFieldCount, len(patch),
	)
	s.metrics.Reset(req.SectionTag, known)

	if !known {
		s.log(ctx).Warn("Unknown reset tag", zap.String("tag", req.SectionTag))
	} else {
		s.log(ctx).Info("Section marked not applicable",
			zap.String("tag", req.SectionTag),
			zap.Int("fields", len(patch)),
		)
	}

	return resp, nil
}

// removeItems drops the given positions, highest first so earlier removals
// do not shift later ones. Duplicates and out of range positions are ignored.
func removeItems(items []string, positions []int) []string {
	if len(positions) == 0 {
		return items
	}
	sorted := slices.Clone(positions)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	for i := len(sorted) - 1; i >= 0; i-- {
		items = submission.RemoveLineItem(items, sorted[i])
	}
	return items
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if t := strings.TrimSpace(item); t != "" {
			out = append(out, t)
		}
	}
	return out
}
