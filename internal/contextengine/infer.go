// File: internal/contextengine/infer.go
//
// Heuristic context inference. Keyword matches against the project name and
// tags fill in ONLY the fields the caller left empty; an explicitly supplied
// field always wins. Unknown enum values fall back to the field default
// instead of failing the run.
package contextengine

import (
	"strings"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

// Field defaults used when neither the caller nor inference produced a value.
const (
	DefaultDomain      = schemas.DomainGeneral
	DefaultStage       = schemas.StageMVP
	DefaultTeamSize    = schemas.TeamSizeSmall
	DefaultCriticality = schemas.CriticalityStandard
)

// domainKeywords maps lexical hints to domains. First match in table order
// wins, so the table order is part of the documented behavior.
var domainKeywords = []struct {
	keyword string
	domain  schemas.Domain
}{
	{"shop", schemas.DomainECommerce},
	{"store", schemas.DomainECommerce},
	{"commerce", schemas.DomainECommerce},
	{"checkout", schemas.DomainECommerce},
	{"bank", schemas.DomainFintech},
	{"payment", schemas.DomainFintech},
	{"fintech", schemas.DomainFintech},
	{"trading", schemas.DomainFintech},
	{"health", schemas.DomainHealthcare},
	{"clinic", schemas.DomainHealthcare},
	{"patient", schemas.DomainHealthcare},
	{"gov", schemas.DomainGovernment},
	{"municipal", schemas.DomainGovernment},
	{"internal", schemas.DomainInternal},
	{"admin", schemas.DomainInternal},
}

var stageKeywords = []struct {
	keyword string
	stage   schemas.Stage
}{
	{"prototype", schemas.StagePrototype},
	{"poc", schemas.StagePrototype},
	{"spike", schemas.StagePrototype},
	{"mvp", schemas.StageMVP},
	{"pilot", schemas.StageMVP},
	{"scale", schemas.StageGrowth},
	{"growth", schemas.StageGrowth},
	{"legacy", schemas.StageMaintenance},
	{"maintenance", schemas.StageMaintenance},
}

var criticalityKeywords = []struct {
	keyword     string
	criticality schemas.Criticality
}{
	{"experiment", schemas.CriticalityExperimental},
	{"sandbox", schemas.CriticalityExperimental},
	{"critical", schemas.CriticalityMissionCritical},
	{"production", schemas.CriticalityBusinessCritical},
	{"revenue", schemas.CriticalityBusinessCritical},
}

// InferContext fills the zero-valued fields of the supplied context from
// project-name/tag keywords, then from fixed defaults. Invalid enum values
// in the supplied context are replaced by the field default.
func InferContext(supplied schemas.ProjectContext) schemas.ProjectContext {
	ctx := Normalize(supplied)
	haystack := strings.ToLower(ctx.ProjectName + " " + strings.Join(ctx.Tags, " "))

	if ctx.Domain == "" {
		for _, entry := range domainKeywords {
			if strings.Contains(haystack, entry.keyword) {
				ctx.Domain = entry.domain
				break
			}
		}
		if ctx.Domain == "" {
			ctx.Domain = DefaultDomain
		}
	}
	if ctx.Stage == "" {
		for _, entry := range stageKeywords {
			if strings.Contains(haystack, entry.keyword) {
				ctx.Stage = entry.stage
				break
			}
		}
		if ctx.Stage == "" {
			ctx.Stage = DefaultStage
		}
	}
	if ctx.TeamSize == "" {
		ctx.TeamSize = DefaultTeamSize
	}
	if ctx.Criticality == "" {
		for _, entry := range criticalityKeywords {
			if strings.Contains(haystack, entry.keyword) {
				ctx.Criticality = entry.criticality
				break
			}
		}
		if ctx.Criticality == "" {
			ctx.Criticality = DefaultCriticality
		}
	}
	return ctx
}

// Normalize blanks out unknown enum values so they fall through to the
// field defaults downstream instead of aborting the run.
func Normalize(ctx schemas.ProjectContext) schemas.ProjectContext {
	if ctx.Domain != "" && !validDomain(ctx.Domain) {
		ctx.Domain = ""
	}
	if ctx.Stage != "" && !validStage(ctx.Stage) {
		ctx.Stage = ""
	}
	if ctx.TeamSize != "" && !validTeamSize(ctx.TeamSize) {
		ctx.TeamSize = ""
	}
	if ctx.Criticality != "" && !validCriticality(ctx.Criticality) {
		ctx.Criticality = ""
	}
	return ctx
}

func validDomain(d schemas.Domain) bool {
	switch d {
	case schemas.DomainGeneral, schemas.DomainECommerce, schemas.DomainFintech,
		schemas.DomainHealthcare, schemas.DomainGovernment, schemas.DomainInternal:
		return true
	}
	return false
}

func validStage(s schemas.Stage) bool {
	switch s {
	case schemas.StagePrototype, schemas.StageMVP, schemas.StageGrowth, schemas.StageMaintenance:
		return true
	}
	return false
}

func validTeamSize(t schemas.TeamSize) bool {
	switch t {
	case schemas.TeamSizeSolo, schemas.TeamSizeSmall, schemas.TeamSizeMedium, schemas.TeamSizeLarge:
		return true
	}
	return false
}

func validCriticality(c schemas.Criticality) bool {
	switch c {
	case schemas.CriticalityExperimental, schemas.CriticalityStandard,
		schemas.CriticalityBusinessCritical, schemas.CriticalityMissionCritical:
		return true
	}
	return false
}
