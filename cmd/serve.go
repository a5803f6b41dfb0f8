package cmd

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jsphweid/harmondrill/chord"
	"github.com/jsphweid/harmondrill/constants"
	"github.com/jsphweid/harmondrill/db"
	"github.com/jsphweid/harmondrill/keysig"
	"github.com/jsphweid/harmondrill/logger"
	"github.com/jsphweid/harmondrill/model"
	"github.com/jsphweid/harmondrill/session"
	"github.com/jsphweid/harmondrill/voicing"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the drill API",
	Long:  `Serves random chords and drill sessions over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func newHistoryStore() (db.HistoryStore, error) {
	endpoint := constants.GetDynamoEndpoint()
	if endpoint == "" {
		return db.NewMemoryStore(), nil
	}
	client, err := db.NewDynamoClient(endpoint, constants.GetDynamoRegion())
	if err != nil {
		return nil, err
	}
	logger.Info("using DynamoDB history", logger.Fields{"endpoint": endpoint, "table": constants.GetDynamoTable()})
	return db.NewDynamoStore(client, constants.GetDynamoTable()), nil
}

func serve() error {
	flush, err := logger.InitSentry(constants.GetSentryDSN(), constants.GetEnvironment(), Version)
	if err != nil {
		logger.Warn("could not initialize Sentry", logger.Fields{"error": err})
	}
	defer flush()

	store, err := newHistoryStore()
	if err != nil {
		return err
	}
	g := newGenerator()
	router := NewRouter(session.NewManager(g, store, session.WithTTL(constants.GetSessionTTL())), g)

	addr := ":" + constants.GetPort()
	logger.Info("listening", logger.Fields{"addr": addr})
	return http.ListenAndServe(addr, router)
}

type api struct {
	manager   *session.Manager
	generator *chord.Generator
}

// NewRouter builds the HTTP API over a session manager and the generator
// used for one-off chords.
func NewRouter(manager *session.Manager, g *chord.Generator) http.Handler {
	a := &api{manager: manager, generator: g}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/keys", a.handleKeys).Methods("GET")
	router.HandleFunc("/voicings", a.handleVoicings).Methods("GET")
	router.HandleFunc("/chords/random", a.handleRandomChord).Methods("POST")
	router.HandleFunc("/sessions", a.handleCreateSession).Methods("POST")
	router.HandleFunc("/sessions/{id}", a.handleGetSession).Methods("GET")
	router.HandleFunc("/sessions/{id}/next", a.handleNext).Methods("POST")
	router.HandleFunc("/sessions/{id}/step", a.handleStep).Methods("POST")
	router.HandleFunc("/sessions/{id}/history", a.handleHistory).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: strings.Split(constants.GetAllowedOrigins(), ","),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("could not encode response", err, nil)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

// writeSessionError maps session errors to status codes.
func writeSessionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrInvalidConfig):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrNoChord):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Error("request failed", err, logger.Fields{"path": r.URL.Path})
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func chordResponse(c *model.Chord, displayed model.Pitches, offset int) model.ChordResponse {
	res := model.ChordResponse{Chord: c, OctaveOffset: offset, Exhausted: c == nil}
	if c != nil {
		res.Label = chord.RomanNumeral(*c)
		res.Name = chord.Name(*c)
		res.Displayed = displayed
		res.Spelled = chord.SpellPitches(*c, displayed)
	}
	return res
}

func sessionResponse(snap session.Snapshot) model.SessionResponse {
	return model.SessionResponse{
		ID:            snap.ID,
		ChordResponse: chordResponse(snap.Chord, snap.Displayed, snap.OctaveOffset),
	}
}

func decodeConfig(r *http.Request) (session.Config, error) {
	var req model.RandomChordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return session.Config{}, err
	}
	return session.Config{Selections: req.Selections, Keys: req.Keys, Mode: req.Mode}, nil
}

func (a *api) handleKeys(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, keysig.All())
}

func (a *api) handleVoicings(w http.ResponseWriter, r *http.Request) {
	res := make([]model.VoicingEntry, 0)
	for _, cat := range voicing.Categories() {
		for idx := 0; idx < voicing.NumInversions; idx++ {
			tmpl, ok := voicing.Lookup(cat, idx)
			if !ok {
				continue
			}
			res = append(res, model.VoicingEntry{Category: cat, Index: idx, Voicing: tmpl.Voicing, Roots: tmpl.Roots})
		}
	}
	writeJSON(w, http.StatusOK, res)
}

func (a *api) handleRandomChord(w http.ResponseWriter, r *http.Request) {
	cfg, err := decodeConfig(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}
	if err := cfg.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c := a.generator.GenerateRandomChord(cfg.Selections, cfg.Keys, cfg.Mode)
	var displayed model.Pitches
	if c != nil {
		displayed = c.Pitches
	}
	writeJSON(w, http.StatusOK, chordResponse(c, displayed, 0))
}

func (a *api) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	cfg, err := decodeConfig(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}
	snap, err := a.manager.Create(r.Context(), cfg)
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse(snap))
}

func (a *api) handleGetSession(w http.ResponseWriter, r *http.Request) {
	snap, err := a.manager.Get(mux.Vars(r)["id"])
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(snap))
}

func (a *api) handleNext(w http.ResponseWriter, r *http.Request) {
	snap, err := a.manager.Next(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(snap))
}

func (a *api) handleStep(w http.ResponseWriter, r *http.Request) {
	var req model.StepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}
	dir, err := chord.ParseDirection(req.Direction)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := a.manager.Step(r.Context(), mux.Vars(r)["id"], dir)
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(snap))
}

func (a *api) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := a.manager.History(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	if entries == nil {
		entries = []model.HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
