package log

// GetSampleConfig returns a sample configuration for logging
func GetSampleConfig() string {
	return `# Logging configuration
log {
  level = "info"                  # Used when neither --verbose nor --debug is given
  file = "/var/log/fileproc.log"  # Optional log file, in addition to stderr
  max_size = 10                   # Maximum size in MB before rotation
  max_backups = 3                 # Number of old log files to keep
  max_age = 28                    # Days to keep old log files
  compress = true                 # Compress rotated log files with gzip
}`
}
