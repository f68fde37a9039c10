package domain

// EnvironmentStatus is the outcome of the pre-flight environment check.
// The check never inspects prepare.sh's content and never lets .env content
// alter control flow; it only reports what it found.
type EnvironmentStatus struct {
	// PrepareScriptFixed is true when prepare.sh existed but lacked an
	// execute bit and the checker chmod'ed it.
	PrepareScriptFixed bool

	EnvFilePresent bool

	// EnvVars holds the variable names parsed from .env, for diagnostics
	// only. Empty when the file is absent or unparsable.
	EnvVars []string
}
