package config

const (
	// InputsDir is the default directory holding one sub-folder per load-test scenario.
	InputsDir = "inputs"
	// OutputsDir is the default directory rendered reports are written to.
	OutputsDir = "outputs"
	// K6Dir is the default directory holding the k6 scripts, one per scenario folder.
	K6Dir = "k6"
	// DefaultWorkers is the default number of files processed concurrently.
	DefaultWorkers = 4
	// EnvPrefix prefixes every environment variable read by the tool.
	EnvPrefix = "LOADREPORT_"
	// BaseDirEnv names the base directory that inputs and outputs default under.
	BaseDirEnv = "FILE_LOCATION"
)
