package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/mhagen/ecotouchd/config"
	"github.com/mhagen/ecotouchd/ecotouch"
	"github.com/mhagen/ecotouchd/exporter"
)

var cfgFile = flag.String("f", "ecotouchd.yaml", "configuration `file`")
var verbose = flag.Bool("v", false, "verbose logging")

// To be set via go build -ldflags "-X main.buildVersion=$(git describe --dirty) -X main.buildDate=$(date -u +%FT%TZ)"
var buildVersion = "unspecified"
var buildDate = "unknown"

var bridge *ecotouch.Bridge

func listTags(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	e := json.NewEncoder(w)
	e.SetIndent("", "    ")
	e.Encode(ecotouch.TagNames())
}

func getTag(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	name := params["id"]
	res, err := bridge.ReadValue(r.Context(), name)
	if err != nil {
		status := http.StatusBadGateway
		if _, known := ecotouch.Tags[name]; !known {
			status = http.StatusNotFound
		}
		w.WriteHeader(status)
		w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
		w.Write([]byte(err.Error()))
		return
	}
	writeResult(w, name, res)
}

func setTag(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	name := params["id"]

	var req struct {
		Value interface{} `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
		w.Write([]byte(err.Error()))
		return
	}

	res, err := bridge.WriteValue(r.Context(), name, req.Value)
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, ecotouch.ErrNotWriteable), errors.Is(err, ecotouch.ErrInvalidValue):
			status = http.StatusBadRequest
		}
		if _, known := ecotouch.Tags[name]; !known {
			status = http.StatusNotFound
		}
		w.WriteHeader(status)
		w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
		w.Write([]byte(err.Error()))
		return
	}
	writeResult(w, name, res)
}

func writeResult(w http.ResponseWriter, name string, res ecotouch.Result) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	body := struct {
		Name     string `json:"name"`
		Value    any    `json:"value"`
		Status   string `json:"status"`
		Mismatch bool   `json:"mismatch,omitempty"`
	}{Name: name, Value: res.Value, Status: res.Status, Mismatch: res.Mismatch}
	e := json.NewEncoder(w)
	e.SetIndent("", "    ")
	e.Encode(body)
}

func versionInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	v := struct {
		Version   string `json:"version"`
		BuildDate string `json:"build_date"`
	}{Version: buildVersion, BuildDate: buildDate}
	j, _ := json.Marshal(v)
	w.Write(j)
}

func main() {
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp: true,
		})
	}

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	if cfg.Heatpump.CatalogFile != "" {
		f, err := os.Open(cfg.Heatpump.CatalogFile)
		if err != nil {
			log.Fatalf("catalog overlay: %v", err)
		}
		n, err := ecotouch.LoadOverlay(f)
		f.Close()
		if err != nil {
			log.Fatalf("catalog overlay: %v", err)
		}
		log.Infof("loaded %v extra properties from %v", n, cfg.Heatpump.CatalogFile)
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	defer stop()

	bridge = ecotouch.NewBridge(ecotouch.BridgeConfig{
		Host:           cfg.Heatpump.Host,
		TagsPerRequest: cfg.Heatpump.TagsPerRequest,
		Language:       cfg.Heatpump.Language,
	})
	if err := bridge.Login(ctx, cfg.Heatpump.Username, cfg.Heatpump.Password); err != nil {
		log.Fatalf("login to %v failed: %v", cfg.Heatpump.Host, err)
	}

	reg := prometheus.NewRegistry()
	metrics := exporter.NewMetrics(reg)

	var publisher *exporter.Publisher
	if cfg.MQTT != nil {
		publisher, err = exporter.NewPublisher(exporter.MQTTConfig{
			Broker:      cfg.MQTT.Broker,
			ClientID:    cfg.MQTT.ClientID,
			Username:    cfg.MQTT.Username,
			Password:    cfg.MQTT.Password,
			TopicPrefix: cfg.MQTT.TopicPrefix,
		})
		if err != nil {
			log.Fatalf("mqtt connect failed: %v", err)
		}
	}

	if len(cfg.Poll.Tags) > 0 {
		var pub exporter.StatePublisher
		if publisher != nil {
			pub = publisher
		}
		poller := exporter.NewPoller(bridge, cfg.Poll.Tags, cfg.PollInterval(), metrics, pub)
		go poller.Run(ctx)
	}

	router := mux.NewRouter()
	router.HandleFunc("/tags", listTags).Methods("GET")
	router.HandleFunc("/tag/{id}", getTag).Methods("GET")
	router.HandleFunc("/tag/{id}", setTag).Methods("POST")
	router.HandleFunc("/version", versionInfo).Methods("GET")
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	h := &http.Server{Addr: cfg.HTTP.Listen, Handler: router}
	go func() {
		log.Infof("http server listening on %v", cfg.HTTP.Listen)
		if err := h.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.Shutdown(shutdownCtx); err != nil {
		log.Warnf("http shutdown: %v", err)
	}
	if publisher != nil {
		publisher.Close()
	}
	if err := bridge.Logout(shutdownCtx); err != nil {
		log.Warnf("logout: %v", err)
	}
	fmt.Println("bye")
}
