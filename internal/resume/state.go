package resume

// State is a step of the parse pipeline.
type State int

const (
	StateReceived State = iota
	StateTextObtained
	StateScannedShortCircuit
	StateFieldExtraction
	StateSectionExtraction
	StateEntrySegmentation
	StateSkillMatching
	StateConfidenceScoring
	StateDone
)

var stateNames = map[State]string{
	StateReceived:            "received",
	StateTextObtained:        "text_obtained",
	StateScannedShortCircuit: "scanned_short_circuit",
	StateFieldExtraction:     "field_extraction",
	StateSectionExtraction:   "section_extraction",
	StateEntrySegmentation:   "entry_segmentation",
	StateSkillMatching:       "skill_matching",
	StateConfidenceScoring:   "confidence_scoring",
	StateDone:                "done",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
