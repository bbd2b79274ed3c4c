package config

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var loggingOnce sync.Once

// IsRunningInLambda detects the AWS Lambda execution environment.
func IsRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// SetupLogging configures logrus once per process: JSON output in Lambda
// (CloudWatch-friendly), plain text locally.
func SetupLogging(environment string) {
	loggingOnce.Do(func() {
		if IsRunningInLambda() {
			logrus.SetFormatter(&logrus.JSONFormatter{})
		} else {
			logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		}

		if environment == "development" {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.InfoLevel)
		}
	})
}
