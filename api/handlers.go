package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/icu4g/ucore/upservice"
)

// handleChar handles GET /v1/char/{cp}, where {cp} is a hex code point
// (with or without a "U+"/"0x" prefix).
func (s *Server) handleChar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/v1/char/")
	cp, err := parseCodePoint(path)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	info, err := s.svc.Char(cp)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	resp := CharResponse{
		CodePoint:      fmt.Sprintf("U+%04X", info.CodePoint),
		Category:       info.Category,
		BidiClass:      info.BidiClass,
		Mirrored:       info.Mirrored,
		CombiningClass: info.CombiningClass,
	}
	if info.Uppercase != 0 {
		resp.Uppercase = string(info.Uppercase)
	}
	if info.Lowercase != 0 {
		resp.Lowercase = string(info.Lowercase)
	}
	if info.Titlecase != 0 {
		resp.Titlecase = string(info.Titlecase)
	}
	if info.HasDigitValue {
		resp.DigitValue = info.DigitValue
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleNormalize handles GET /v1/normalize?form=nfc&text=...
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	formName := r.URL.Query().Get("form")
	text := r.URL.Query().Get("text")

	form, err := upservice.ParseForm(formName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := s.svc.Normalize(form, text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, NormalizeResponse{Form: formName, Input: text, Output: out})
}

// handleQuickCheck handles GET /v1/quickcheck?form=nfc&text=...
func (s *Server) handleQuickCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	formName := r.URL.Query().Get("form")
	text := r.URL.Query().Get("text")

	form, err := upservice.ParseForm(formName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.svc.QuickCheck(form, text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, QuickCheckResponse{Form: formName, Input: text, Result: result})
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseCodePoint accepts "U+00C0", "0xC0", or a bare hex string.
func parseCodePoint(s string) (rune, error) {
	s = strings.TrimPrefix(s, "U+")
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if s == "" {
		return 0, fmt.Errorf("code point required")
	}
	v, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q: %w", s, err)
	}
	return rune(v), nil
}
