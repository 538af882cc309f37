package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udisondev/turnbattle/internal/data"
)

// CatalogHandler serves the current skill catalog.
type CatalogHandler struct {
	catalog data.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog data.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// EffectView is the public view of one skill effect.
type EffectView struct {
	Kind        string  `json:"kind"`
	Target      string  `json:"target"`
	Count       int32   `json:"count,omitempty"`
	Base        int32   `json:"base,omitempty"`
	ScaleStat   string  `json:"scaleStat,omitempty"`
	ScaleFactor float64 `json:"scaleFactor,omitempty"`
	Duration    int32   `json:"duration,omitempty"`
	Probability float64 `json:"probability"`
}

// SkillView is the public view of a skill template.
type SkillView struct {
	ID          int32        `json:"id"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Trigger     string       `json:"trigger,omitempty"`
	Cost        int32        `json:"cost"`
	Cooldown    int32        `json:"cooldown"`
	Priority    int32        `json:"priority"`
	Description string       `json:"description,omitempty"`
	Effects     []EffectView `json:"effects"`
}

func newSkillView(t *data.SkillTemplate) SkillView {
	v := SkillView{
		ID:          t.ID,
		Name:        t.Name,
		Type:        t.Type.String(),
		Cost:        t.Cost,
		Cooldown:    t.Cooldown,
		Priority:    t.Priority,
		Description: t.Description,
		Effects:     make([]EffectView, 0, len(t.Effects)),
	}
	if t.Trigger != data.TriggerNone {
		v.Trigger = t.Trigger.String()
	}
	for _, e := range t.Effects {
		ev := EffectView{
			Kind:        e.Kind.String(),
			Target:      e.Target.String(),
			Count:       int32(e.TargetCount),
			Base:        e.Base,
			ScaleFactor: e.ScaleFactor,
			Duration:    e.Duration,
			Probability: e.Probability,
		}
		if e.ScaleFactor != 0 {
			ev.ScaleStat = e.ScaleStat.String()
		}
		v.Effects = append(v.Effects, ev)
	}
	return v
}

// ListSkills handles GET /api/catalog/skills
func (h *CatalogHandler) ListSkills(c *gin.Context) {
	if h.catalog == nil {
		HandleError(c, errNoCatalog)
		return
	}
	skills := h.catalog.ListAll()
	out := make([]SkillView, 0, len(skills))
	for _, t := range skills {
		out = append(out, newSkillView(t))
	}
	respondSuccess(c, http.StatusOK, out)
}
