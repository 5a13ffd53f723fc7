// Package httpadapter exposes the engine as a JSON API. Grids travel as
// [][]string of symbols ("" for empty) and are mapped to board values at
// this boundary; the engine below never sees raw text.
package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/EmpyreanHYR/sudoku/internal/domain"
	"github.com/EmpyreanHYR/sudoku/internal/history"
	"github.com/EmpyreanHYR/sudoku/internal/solver"
	"github.com/EmpyreanHYR/sudoku/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/verify", h.handleVerify)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/history", h.handleHistory)
	mux.HandleFunc("/api/history/export", h.handleExport)
}

// alphabetFor resolves the request alphabet, falling back to the default for
// the block size.
func alphabetFor(k int, raw string) (domain.Alphabet, error) {
	if raw == "" {
		return domain.DefaultAlphabet(k)
	}
	return domain.ParseAlphabet(raw, k)
}

// ---- Generate ----

type generateReq struct {
	K          int    `json:"k,omitempty"`
	Alphabet   string `json:"alphabet,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	ID         string      `json:"id,omitempty"`
	Puzzle     domain.Grid `json:"puzzle,omitempty"`
	Solution   domain.Grid `json:"solution,omitempty"`
	Seed       int64       `json:"seed,omitempty"`
	Difficulty string      `json:"difficulty,omitempty"`
	Removed    int         `json:"removed,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.K == 0 {
		req.K = 3
	}
	if req.Seed == 0 {
		req.Seed = time.Now().UnixNano()
	}
	diff, err := domain.ParseDifficulty(req.Difficulty)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	a, err := alphabetFor(req.K, req.Alphabet)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	p, st, err := h.UC.Generate(r.Context(), req.Seed, req.K, a, diff)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(generateResp{
		ID:         p.ID,
		Puzzle:     p.Board.ToGrid(a),
		Solution:   p.Solution.ToGrid(a),
		Seed:       req.Seed,
		Difficulty: diff.String(),
		Removed:    len(p.Removed),
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Solve ----

type solveReq struct {
	K        int         `json:"k"`
	Alphabet string      `json:"alphabet,omitempty"`
	Grid     domain.Grid `json:"grid"`
}

type solveResp struct {
	Grid       domain.Grid `json:"grid,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Nodes      int         `json:"nodes,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	a, err := alphabetFor(req.K, req.Alphabet)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	in, err := domain.BoardFromGrid(req.Grid, req.K, a, domain.RoleUser)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	out, st, err := h.UC.Solve(r.Context(), in, a)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, solver.ErrUnsolvable) {
			code = http.StatusUnprocessableEntity
		}
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{Grid: out.ToGrid(a), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Validate ----

type validateReq struct {
	K        int         `json:"k"`
	Alphabet string      `json:"alphabet,omitempty"`
	Grid     domain.Grid `json:"grid"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	a, err := alphabetFor(req.K, req.Alphabet)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	b, err := domain.BoardFromGrid(req.Grid, req.K, a, domain.RoleUser)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), b)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Verify ----

type verifyReq struct {
	K              int         `json:"k"`
	Alphabet       string      `json:"alphabet,omitempty"`
	Candidate      domain.Grid `json:"candidate"`
	Solution       domain.Grid `json:"solution"`
	Puzzle         domain.Grid `json:"puzzle,omitempty"`
	Difficulty     string      `json:"difficulty,omitempty"`
	ElapsedSeconds int         `json:"elapsedSeconds,omitempty"`
}

type verifyResp struct {
	Correct bool   `json:"correct"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req verifyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(verifyResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	a, err := alphabetFor(req.K, req.Alphabet)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(verifyResp{Error: err.Error()})
		return
	}
	candidate, err := domain.BoardFromGrid(req.Candidate, req.K, a, domain.RoleUser)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(verifyResp{Error: err.Error()})
		return
	}
	solution, err := domain.BoardFromGrid(req.Solution, req.K, a, domain.RoleSolved)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(verifyResp{Error: err.Error()})
		return
	}
	var clueBoard *domain.Board
	if req.Puzzle != nil {
		clueBoard, err = domain.BoardFromGrid(req.Puzzle, req.K, a, domain.RoleClue)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(verifyResp{Error: err.Error()})
			return
		}
	}
	diff, err := domain.ParseDifficulty(req.Difficulty)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(verifyResp{Error: err.Error()})
		return
	}
	p := &domain.Puzzle{K: req.K, Alphabet: a, Difficulty: diff, Board: clueBoard, Solution: solution}
	correct, err := h.UC.Check(r.Context(), candidate, p, time.Duration(req.ElapsedSeconds)*time.Second)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(verifyResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(verifyResp{Correct: correct})
}

// ---- Hint ----

type hintReq struct {
	K        int         `json:"k"`
	Alphabet string      `json:"alphabet,omitempty"`
	Grid     domain.Grid `json:"grid"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	a, err := alphabetFor(req.K, req.Alphabet)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	b, err := domain.BoardFromGrid(req.Grid, req.K, a, domain.RoleUser)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), b, a)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: ok, Hint: hh})
}

// ---- History ----

type historyResp struct {
	Records []domain.Record `json:"records"`
	Error   string          `json:"error,omitempty"`
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	recs, err := h.UC.Records()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(historyResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(historyResp{Records: recs})
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}
	rec, err := h.UC.Record(id)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	switch r.URL.Query().Get("format") {
	case "png":
		data, err := history.RenderPNG(rec)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(history.RenderText(rec)))
	}
}
