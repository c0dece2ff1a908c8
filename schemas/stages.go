package schemas

// Stage is one of the fixed pipeline buckets of the CRM board.
type Stage string

const (
	StageNone           Stage = ""
	StageInitialContact Stage = "Contato Inicial"
	StageCatalogSent    Stage = "Envio do Catálogo"
	StageQuestions      Stage = "Perguntas"
	StageQualified      Stage = "Qualificado"
)

// Stages lists the board columns in display order.
var Stages = []Stage{
	StageInitialContact,
	StageCatalogSent,
	StageQuestions,
	StageQualified,
}

// ParseStage matches s against the known stages exactly, without any case or
// accent folding.
func ParseStage(s string) (Stage, bool) {
	for _, stage := range Stages {
		if string(stage) == s {
			return stage, true
		}
	}
	return StageNone, false
}

func (s Stage) Known() bool {
	_, ok := ParseStage(string(s))
	return ok
}
