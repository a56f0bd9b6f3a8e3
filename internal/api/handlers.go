package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/blockforge/blockforge/pkg/errors"
	"github.com/blockforge/blockforge/pkg/io"
	"github.com/blockforge/blockforge/pkg/model"
)

func (s *Server) getModel(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	doc := io.FromModel(s.model)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, doc)
}

// putModel replaces the whole model atomically: the new document is
// decoded and validated first, and the current model is only swapped
// out when that succeeded.
func (s *Server) putModel(w http.ResponseWriter, r *http.Request) {
	var doc io.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeMalformedSnapshot, err, "decode snapshot"))
		return
	}
	m, err := io.ToModel(doc)
	if err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	s.model = m
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

type createBlockRequest struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	ParentID string  `json:"parent_id"`
}

func (s *Server) createBlock(w http.ResponseWriter, r *http.Request) {
	var req createBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := errors.ValidateKind(req.Type); err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.model.CreateBlock(model.Kind(req.Type), req.X, req.Y, req.ParentID)
	if req.Name != "" {
		if err := s.model.RenameBlock(id, req.Name); err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) deleteBlock(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.model.DeleteBlock(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type moveRequest struct {
	DX           float64 `json:"dx"`
	DY           float64 `json:"dy"`
	WithChildren *bool   `json:"with_children"`
}

func (s *Server) moveBlock(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	// Moving the subtree together is the editor default.
	withChildren := true
	if req.WithChildren != nil {
		withChildren = *req.WithChildren
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.model.MoveBlock(chi.URLParam(r, "id"), req.DX, req.DY, withChildren); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type resizeRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (s *Server) resizeBlock(w http.ResponseWriter, r *http.Request) {
	var req resizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.model.ResizeBlock(chi.URLParam(r, "id"), req.Width, req.Height); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) layoutBlock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.model.Block(id); !ok {
		writeError(w, model.ErrBlockNotFound)
		return
	}
	s.model.AutoLayout(id)
	w.WriteHeader(http.StatusNoContent)
}

type createPortRequest struct {
	Name   string   `json:"name"`
	Side   string   `json:"side"`
	Offset *float64 `json:"offset"`
}

func (s *Server) createPort(w http.ResponseWriter, r *http.Request) {
	var req createPortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := errors.ValidateSide(req.Side); err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	blockID := chi.URLParam(r, "id")
	portID, err := s.model.CreatePort(blockID, req.Name, model.Side(req.Side))
	if err != nil {
		writeError(w, err)
		return
	}
	if req.Offset != nil {
		if err := s.model.SetPortOffset(blockID, portID, *req.Offset); err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": portID})
}

func (s *Server) deletePort(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.model.DeletePort(chi.URLParam(r, "id"), chi.URLParam(r, "portID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createConnectionRequest struct {
	FromBlock string `json:"from_block"`
	ToBlock   string `json:"to_block"`
	FromPort  string `json:"from_port"`
	ToPort    string `json:"to_port"`
}

func (s *Server) createConnection(w http.ResponseWriter, r *http.Request) {
	var req createConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.FromBlock == "" || req.ToBlock == "" {
		badRequest(w, "from_block and to_block are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.model.CreateConnection(req.FromBlock, req.ToBlock, req.FromPort, req.ToPort)
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) deleteConnection(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.model.DeleteConnection(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type hitResponse struct {
	Block      string `json:"block,omitempty"`
	Port       string `json:"port,omitempty"`
	Connection string `json:"connection,omitempty"`
}

// hitTest resolves what lies under a point: the deepest visible block,
// a port of that block if one is within tolerance, and any connection
// within tolerance of the point.
func (s *Server) hitTest(w http.ResponseWriter, r *http.Request) {
	x, errX := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	y, errY := strconv.ParseFloat(r.URL.Query().Get("y"), 64)
	if errX != nil || errY != nil {
		badRequest(w, "x and y query parameters are required numbers")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var resp hitResponse
	if blockID, ok := s.model.BlockAt(x, y); ok {
		resp.Block = blockID
		if port, ok := s.model.PortAt(blockID, x, y); ok {
			resp.Port = port.ID
		}
	}
	if conn, ok := s.model.ConnectionAt(x, y, 0); ok {
		resp.Connection = conn.ID
	}
	writeJSON(w, http.StatusOK, resp)
}
