package worksheet

// Topic identifiers as used in links and on the command line.
const (
	TopicDivision  = "division"
	TopicBlank     = "blank"
	TopicGCDLCM    = "gcdlcm"
	TopicFactor    = "factor"
	TopicCompare   = "compare"
	TopicCounting  = "counting"
	TopicArea      = "area"
	TopicFrequency = "frequency"
)

// MaxCount is the largest batch any topic will produce.
const MaxCount = 30

// ModeMixed is the shared name of the "any kind" mode.
const ModeMixed = "mixed"

// Param keys understood by every topic.
const (
	ParamCount = "count"
	ParamMode  = "mode"
)
