package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wxnacy/typeahead/pkg/log"
	"github.com/wxnacy/typeahead/pkg/remote"
)

func main() {
	var port int
	var param string

	flag.IntVar(&port, "port", 8080, "Port to listen on")
	flag.StringVar(&param, "param", remote.DefaultParam, "Query parameter carrying the search term")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetLogLevel(logrus.DebugLevel)
	logger := log.GetLogger()

	addr := fmt.Sprintf(":%d", port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(param),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Infof("mock lookup API listening on %s (param %q)", addr, param)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
