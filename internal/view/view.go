// Package view projects raw complaint records into fully localized,
// render-ready view models.
//
// Projection is a pure combination of the locale resolver and the timeline
// builder: projecting the same (record, locale) twice yields structurally
// identical views given an unchanged dictionary. The only side-effecting
// operation here is the deferred translation affordance, which is a
// separate, user-triggered action with exactly one outbound attempt.
package view

import (
	"context"
	"log"

	"nivaran/internal/complaint"
	"nivaran/internal/locale"
	"nivaran/internal/timeline"
	"nivaran/internal/translate"
)

// TranslationFailed is the literal text shown in the target region when the
// translation attempt errors. The original description stays visible.
const TranslationFailed = "Translation failed."

// View is the render-ready representation of one complaint.
type View struct {
	ID            int64            `json:"id"`
	Description   string           `json:"description"`
	SectorLabel   string           `json:"sector_label"`
	PriorityLabel string           `json:"priority_label"`
	PriorityTag   string           `json:"priority_tag"`
	StatusLabel   string           `json:"status_label"`
	IDLabel       string           `json:"id_label"`
	Date          string           `json:"date"`
	Timeline      []timeline.Stage `json:"timeline"`

	// CanTranslate tells the presentation layer to offer a "translate this
	// description" action. Only non-default locales get the affordance.
	CanTranslate bool `json:"can_translate"`
}

// Projector builds Views for a fixed dictionary and translator.
type Projector struct {
	dict       *locale.Dictionary
	translator translate.Translator
}

// NewProjector creates a projector over the given collaborators.
func NewProjector(dict *locale.Dictionary, translator translate.Translator) *Projector {
	return &Projector{dict: dict, translator: translator}
}

// Project builds the localized view model for a complaint record.
//
// Pure and idempotent; the record is never mutated.
func (p *Projector) Project(rec complaint.Record, tag string) View {
	return View{
		ID:            rec.ID,
		Description:   rec.Description,
		SectorLabel:   p.dict.Resolve(tag, rec.Sector.LocaleKey(), string(rec.Sector)),
		PriorityLabel: p.dict.Resolve(tag, rec.Priority.LocaleKey(), string(rec.Priority)),
		PriorityTag:   p.dict.Resolve(tag, "priority_label", "Priority"),
		StatusLabel:   p.dict.Resolve(tag, rec.Status.LocaleKey(), string(rec.Status)),
		IDLabel:       p.dict.Resolve(tag, "id_label", "ID"),
		Date:          rec.Date(),
		Timeline:      timeline.Build(p.dict, rec.Status, tag),
		CanTranslate:  tag != locale.DefaultTag,
	}
}

// TranslateDescription runs the deferred translation affordance.
//
// One outbound attempt, no retry. On any failure the literal
// TranslationFailed text is returned for the target region; the caller keeps
// the original description visible either way. Overlapping invocations for
// different complaints are independent; re-invoking for the same region is
// tolerated, last result wins.
func (p *Projector) TranslateDescription(ctx context.Context, description, tag string) string {
	translated, err := p.translator.Translate(ctx, description, tag)
	if err != nil {
		log.Println("⚠️  Translation attempt failed:", err)
		return TranslationFailed
	}
	return translated
}
