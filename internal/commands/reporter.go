package commands

// Reporter receives progress notices while an export runs.
type Reporter interface {
	Info(message string)
	Warn(message string)
	FileAdded(relativePath string)
	FileIgnored(relativePath string)
	DirectoryIgnored(relativePath string)
}

type nopReporter struct{}

func (nopReporter) Info(string)             {}
func (nopReporter) Warn(string)             {}
func (nopReporter) FileAdded(string)        {}
func (nopReporter) FileIgnored(string)      {}
func (nopReporter) DirectoryIgnored(string) {}

func reporterOrNop(reporter Reporter) Reporter {
	if reporter == nil {
		return nopReporter{}
	}
	return reporter
}
