// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

// Package relaytest provides an in-process relay implementation for tests.
//
// The server speaks the same JSON envelope protocol as a production relay:
// device tokens are HMAC-signed JWTs, messages sit in per-device mailboxes
// until pulled, pairing sessions are single use, and promotion is granted to
// the first eligible requester only. State lives in memory and is guarded by
// one mutex; every test gets an isolated instance.
package relaytest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/avoronin/go-sync-keeper/models"
)

// DefaultAliveWindow is how recently the master must have heartbeated to be
// reported alive. Tests shrink it to simulate a silent master quickly.
const DefaultAliveWindow = 2 * time.Minute

type device struct {
	id       string
	role     models.Role
	name     string
	lastSeen time.Time
}

type session struct {
	payload   models.PairingPayload
	expiresAt time.Time
}

// Server is an in-memory relay.
type Server struct {
	httpSrv *httptest.Server
	secret  []byte

	mu          sync.Mutex
	aliveWindow time.Duration
	now         func() time.Time
	devices     map[string]*device
	mailboxes   map[string][]models.SyncMessage
	sessions    map[string]session
	masterID    string
	codeSeq     int
}

// New starts a relay on a random local port. Callers own the shutdown via
// Close (or httptest's automatic cleanup when wired with t.Cleanup).
func New() *Server {
	s := &Server{
		secret:      []byte("relaytest-secret"),
		aliveWindow: DefaultAliveWindow,
		now:         time.Now,
		devices:     make(map[string]*device),
		mailboxes:   make(map[string][]models.SyncMessage),
		sessions:    make(map[string]session),
	}

	r := chi.NewRouter()
	r.Post("/pair", s.handlePair)
	r.Post("/pairing/initiate", s.handleInitiate)
	r.Post("/pairing/claim", s.handleClaim)
	r.Post("/push", s.handlePush)
	r.Post("/pull", s.handlePull)
	r.Post("/heartbeat", s.handleHeartbeat)
	r.Post("/devices", s.handleDevices)
	r.Post("/revoke", s.handleRevoke)
	r.Post("/device-name", s.handleDeviceName)
	r.Post("/promote", s.handlePromote)

	s.httpSrv = httptest.NewServer(r)
	return s
}

// URL returns the relay base URL.
func (s *Server) URL() string { return s.httpSrv.URL }

func (s *Server) Close() { s.httpSrv.Close() }

// SetAliveWindow shrinks or stretches the master liveness window.
func (s *Server) SetAliveWindow(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aliveWindow = d
}

// SetClock replaces the relay's wall clock so tests can age pairing
// sessions and heartbeats.
func (s *Server) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// TouchDevice backdates or refreshes a device's last heartbeat.
func (s *Server) TouchDevice(deviceID string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.devices[deviceID]; ok {
		d.lastSeen = at
	}
}

// Requeue puts a pulled message back into its recipient's mailbox, letting
// tests exercise relay-level redelivery.
func (s *Server) Requeue(deviceID string, msg models.SyncMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mailboxes[deviceID] = append(s.mailboxes[deviceID], msg)
}

// PendingMessages returns a snapshot of a device's mailbox without
// consuming it.
func (s *Server) PendingMessages(deviceID string) []models.SyncMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SyncMessage, len(s.mailboxes[deviceID]))
	copy(out, s.mailboxes[deviceID])
	return out
}

// MasterID returns the device the relay currently recognises as master.
func (s *Server) MasterID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.masterID
}

func (s *Server) mintToken(deviceID string) (string, error) {
	claims := jwt.MapClaims{
		"device_id": deviceID,
		"iat":       s.now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// authenticate verifies the token signature and that it was minted for
// deviceID, and that the device is still part of the cluster.
func (s *Server) authenticate(deviceID, token string) error {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return fmt.Errorf("invalid device token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || claims["device_id"] != deviceID {
		return fmt.Errorf("token does not match device")
	}
	if _, ok := s.devices[deviceID]; !ok {
		return fmt.Errorf("unknown device")
	}
	return nil
}

func decode[T any](r *http.Request) (T, error) {
	var req T
	err := json.NewDecoder(r.Body).Decode(&req)
	return req, err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.Envelope{
		Success:    false,
		Error:      "http_error",
		Message:    message,
		HTTPStatus: status,
	})
}

func (s *Server) masterAliveLocked() bool {
	m, ok := s.devices[s.masterID]
	if !ok {
		return false
	}
	return s.now().Sub(m.lastSeen) <= s.aliveWindow
}

func (s *Server) rosterLocked() []models.DeviceInfo {
	out := make([]models.DeviceInfo, 0, len(s.devices))
	for _, d := range s.devices {
		seen := d.lastSeen
		out = append(out, models.DeviceInfo{
			DeviceID: d.id,
			Role:     d.role,
			Name:     d.name,
			LastSeen: &seen,
		})
	}
	return out
}

func (s *Server) handlePair(w http.ResponseWriter, r *http.Request) {
	req, err := decode[models.PairRequest](r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case req.Bootstrap:
		if s.masterID != "" {
			writeErr(w, http.StatusConflict, "cluster already has a master")
			return
		}
		s.masterID = req.DeviceID
		s.devices[req.DeviceID] = &device{id: req.DeviceID, role: models.RoleMaster, name: req.DeviceName, lastSeen: s.now()}
	case req.Role == models.RoleSlave:
		if req.MasterID != s.masterID || s.masterID == "" {
			writeErr(w, http.StatusConflict, "unknown master")
			return
		}
		s.devices[req.DeviceID] = &device{id: req.DeviceID, role: models.RoleSlave, name: req.DeviceName, lastSeen: s.now()}
	default:
		writeErr(w, http.StatusBadRequest, "invalid pair request")
		return
	}

	token, err := s.mintToken(req.DeviceID)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "mint token")
		return
	}
	writeJSON(w, http.StatusOK, models.PairResponse{
		Envelope:    models.Envelope{Success: true},
		DeviceToken: token,
	})
}

func (s *Server) handleInitiate(w http.ResponseWriter, r *http.Request) {
	req, err := decode[models.InitiateRequest](r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authenticate(req.DeviceID, req.DeviceToken); err != nil {
		writeErr(w, http.StatusUnauthorized, err.Error())
		return
	}
	if req.DeviceID != s.masterID {
		writeErr(w, http.StatusForbidden, "only the master can invite")
		return
	}

	s.codeSeq++
	code := fmt.Sprintf("AB%02d-CD%02d", s.codeSeq, s.codeSeq)
	expires := s.now().Add(5 * time.Minute)
	s.sessions[code] = session{payload: req.Payload, expiresAt: expires}

	writeJSON(w, http.StatusOK, models.InitiateResponse{
		Envelope:  models.Envelope{Success: true},
		ShortCode: code,
		ExpiresAt: expires,
	})
}

func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	req, err := decode[models.ClaimRequest](r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[req.ShortCode]
	if !ok || s.now().After(sess.expiresAt) {
		writeErr(w, http.StatusNotFound, "unknown or expired pairing code")
		return
	}
	// Single use: a second claim of the same code must fail.
	delete(s.sessions, req.ShortCode)

	writeJSON(w, http.StatusOK, models.ClaimResponse{
		Envelope: models.Envelope{Success: true},
		Payload:  sess.payload,
	})
}

func (s *Server) handlePush(w http.ResponseWriter, r *http.Request) {
	req, err := decode[models.PushRequest](r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authenticate(req.DeviceID, req.DeviceToken); err != nil {
		writeErr(w, http.StatusUnauthorized, err.Error())
		return
	}
	if _, ok := s.devices[req.To]; !ok {
		writeErr(w, http.StatusNotFound, "unknown recipient")
		return
	}

	msg := models.SyncMessage{
		MessageID: uuid.NewString(),
		From:      req.DeviceID,
		To:        req.To,
		Payload:   req.Payload,
		CreatedAt: s.now(),
	}
	s.mailboxes[req.To] = append(s.mailboxes[req.To], msg)

	writeJSON(w, http.StatusOK, models.PushResponse{
		Envelope:  models.Envelope{Success: true},
		MessageID: msg.MessageID,
	})
}

func (s *Server) handlePull(w http.ResponseWriter, r *http.Request) {
	req, err := decode[models.PullRequest](r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authenticate(req.DeviceID, req.DeviceToken); err != nil {
		writeErr(w, http.StatusUnauthorized, err.Error())
		return
	}

	msgs := s.mailboxes[req.DeviceID]
	s.mailboxes[req.DeviceID] = nil

	writeJSON(w, http.StatusOK, models.PullResponse{
		Envelope: models.Envelope{Success: true},
		Messages: msgs,
	})
}

func (s *Server) handleHeartbeat(w http.ResponseWriter, r *http.Request) {
	req, err := decode[models.HeartbeatRequest](r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authenticate(req.DeviceID, req.DeviceToken); err != nil {
		writeErr(w, http.StatusUnauthorized, err.Error())
		return
	}
	s.devices[req.DeviceID].lastSeen = s.now()

	writeJSON(w, http.StatusOK, models.HeartbeatResponse{
		Envelope: models.Envelope{Success: true},
		ClusterStatus: models.ClusterStatus{
			MasterAlive: s.masterAliveLocked(),
			Devices:     s.rosterLocked(),
		},
	})
}

func (s *Server) handleDevices(w http.ResponseWriter, r *http.Request) {
	req, err := decode[models.DevicesRequest](r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authenticate(req.DeviceID, req.DeviceToken); err != nil {
		writeErr(w, http.StatusUnauthorized, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, models.DevicesResponse{
		Envelope: models.Envelope{Success: true},
		Devices:  s.rosterLocked(),
	})
}

func (s *Server) handleRevoke(w http.ResponseWriter, r *http.Request) {
	req, err := decode[models.RevokeRequest](r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authenticate(req.DeviceID, req.DeviceToken); err != nil {
		writeErr(w, http.StatusUnauthorized, err.Error())
		return
	}
	if _, ok := s.devices[req.TargetDeviceID]; !ok {
		writeErr(w, http.StatusNotFound, "unknown device")
		return
	}

	delete(s.devices, req.TargetDeviceID)
	delete(s.mailboxes, req.TargetDeviceID)
	if req.TargetDeviceID == s.masterID {
		s.masterID = ""
	}

	writeJSON(w, http.StatusOK, models.RevokeResponse{
		Envelope:        models.Envelope{Success: true},
		NotifiedDevices: len(s.devices),
	})
}

func (s *Server) handleDeviceName(w http.ResponseWriter, r *http.Request) {
	req, err := decode[models.DeviceNameRequest](r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authenticate(req.DeviceID, req.DeviceToken); err != nil {
		writeErr(w, http.StatusUnauthorized, err.Error())
		return
	}
	s.devices[req.DeviceID].name = req.DeviceName

	writeJSON(w, http.StatusOK, models.DeviceNameResponse{
		Envelope: models.Envelope{Success: true},
	})
}

func (s *Server) handlePromote(w http.ResponseWriter, r *http.Request) {
	req, err := decode[models.PromoteRequest](r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authenticate(req.DeviceID, req.DeviceToken); err != nil {
		writeErr(w, http.StatusUnauthorized, err.Error())
		return
	}
	if s.devices[req.DeviceID].role != models.RoleSlave {
		writeErr(w, http.StatusConflict, "requester is not a slave")
		return
	}
	// First eligible requester wins; a stale view or a live master both
	// reject the request.
	if req.MasterID != s.masterID {
		writeErr(w, http.StatusConflict, "stale master view")
		return
	}
	if s.masterAliveLocked() {
		writeErr(w, http.StatusConflict, "master is still alive")
		return
	}

	if old, ok := s.devices[s.masterID]; ok {
		old.role = models.RoleSlave
	}
	s.masterID = req.DeviceID
	s.devices[req.DeviceID].role = models.RoleMaster

	notified := 0
	for _, d := range s.devices {
		if d.role == models.RoleSlave {
			notified++
		}
	}
	writeJSON(w, http.StatusOK, models.PromoteResponse{
		Envelope:       models.Envelope{Success: true},
		NotifiedSlaves: notified,
	})
}
