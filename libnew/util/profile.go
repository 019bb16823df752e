package util

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/sirupsen/logrus"
)

const ProfileAddr = ":7654"

func StartProfileServer(logger *logrus.Entry) {
	logger.Info("Profiling endpoints loaded on " + ProfileAddr)
	err := http.ListenAndServe(ProfileAddr, nil)
	if err != nil {
		logger.Error(err)
	}
}
