package rest_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// fakeStore is an in-memory stand-in for the hosted data table, speaking
// the same REST dialect: POST/GET on the table, PUT/DELETE on table/<id>.
type fakeStore struct {
	mu         sync.Mutex
	prefix     string
	nextID     int
	records    map[string]map[string]any
	failDelete map[string]bool
	failList   bool
	listCalls  int
}

func newFakeStore(prefix string) *fakeStore {
	return &fakeStore{
		prefix:     prefix,
		records:    map[string]map[string]any{},
		failDelete: map[string]bool{},
	}
}

func (s *fakeStore) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = map[string]map[string]any{}
	s.failDelete = map[string]bool{}
	s.failList = false
	s.listCalls = 0
}

func (s *fakeStore) failDeleteOf(objectID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failDelete[objectID] = true
}

func (s *fakeStore) failLists() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failList = true
}

func (s *fakeStore) lists() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls
}

func (s *fakeStore) insert(documentID, transactionID, userID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(map[string]any{
		"document_id":    documentID,
		"transaction_id": transactionID,
		"user_id":        userID,
	})
}

// insertRaw stores a record with arbitrary columns, as a table edited
// outside the gateway may hold.
func (s *fakeStore) insertRaw(fields map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(fields)
}

func (s *fakeStore) insertLocked(fields map[string]any) string {
	s.nextID++
	id := fmt.Sprintf("OBJ-%03d", s.nextID)
	record := map[string]any{"objectId": id, "created": s.nextID, "___class": "logs"}
	for k, v := range fields {
		record[k] = v
	}
	s.records[id] = record
	return id
}

func (s *fakeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *fakeStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("application-id") != "test-app" || r.Header.Get("secret-key") != "test-key" {
		writeStoreJSON(w, http.StatusUnauthorized, map[string]any{"code": 3064, "message": "Not existing user token"})
		return
	}
	path := r.URL.Path
	if !strings.HasPrefix(path, s.prefix) {
		writeStoreJSON(w, http.StatusNotFound, map[string]any{"code": 1009, "message": "Table not found"})
		return
	}
	objectID := strings.TrimPrefix(strings.TrimPrefix(path, s.prefix), "/")

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case objectID == "" && r.Method == http.MethodPost:
		s.create(w, r)
	case objectID == "" && r.Method == http.MethodGet:
		s.list(w, r)
	case objectID != "" && r.Method == http.MethodPut:
		s.update(w, r, objectID)
	case objectID != "" && r.Method == http.MethodDelete:
		s.delete(w, objectID)
	default:
		writeStoreJSON(w, http.StatusMethodNotAllowed, map[string]any{"code": 0, "message": "method not allowed"})
	}
}

func (s *fakeStore) create(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeStoreJSON(w, http.StatusBadRequest, map[string]any{"code": 8002, "message": "Could not parse request"})
		return
	}
	id := s.insertLocked(fields)
	writeStoreJSON(w, http.StatusOK, s.records[id])
}

func (s *fakeStore) list(w http.ResponseWriter, r *http.Request) {
	s.listCalls++
	if s.failList {
		writeStoreJSON(w, http.StatusBadRequest, map[string]any{"code": 1017, "message": "Invalid where clause"})
		return
	}
	query := r.URL.Query()
	conditions, err := parseWhere(query.Get("where"))
	if err != nil {
		writeStoreJSON(w, http.StatusBadRequest, map[string]any{"code": 1017, "message": err.Error()})
		return
	}

	matches := []map[string]any{}
	for _, record := range s.records {
		if matchesAll(record, conditions) {
			matches = append(matches, record)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i]["created"].(int) < matches[j]["created"].(int)
	})

	pageSize := 10
	if v := query.Get("pageSize"); v != "" {
		pageSize, _ = strconv.Atoi(v)
	}
	offset, _ := strconv.Atoi(query.Get("offset"))
	if offset > len(matches) {
		offset = len(matches)
	}
	end := min(offset+pageSize, len(matches))
	writeStoreJSON(w, http.StatusOK, matches[offset:end])
}

func (s *fakeStore) update(w http.ResponseWriter, r *http.Request, objectID string) {
	record, ok := s.records[objectID]
	if !ok {
		writeStoreJSON(w, http.StatusNotFound, map[string]any{"code": 1000, "message": "Entity with the specified ID cannot be found"})
		return
	}
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeStoreJSON(w, http.StatusBadRequest, map[string]any{"code": 8002, "message": "Could not parse request"})
		return
	}
	for k, v := range fields {
		record[k] = v
	}
	writeStoreJSON(w, http.StatusOK, record)
}

func (s *fakeStore) delete(w http.ResponseWriter, objectID string) {
	if s.failDelete[objectID] {
		writeStoreJSON(w, http.StatusInternalServerError, map[string]any{"code": 0, "message": "delete failed"})
		return
	}
	if _, ok := s.records[objectID]; !ok {
		writeStoreJSON(w, http.StatusNotFound, map[string]any{"code": 1000, "message": "Entity with the specified ID cannot be found"})
		return
	}
	delete(s.records, objectID)
	writeStoreJSON(w, http.StatusOK, map[string]any{"deletionTime": 1700000000000})
}

func parseWhere(where string) (map[string]float64, error) {
	conditions := map[string]float64{}
	if where == "" {
		return conditions, nil
	}
	for _, term := range strings.Split(where, " AND ") {
		field, value, ok := strings.Cut(term, " = ")
		if !ok {
			return nil, fmt.Errorf("invalid where clause %q", where)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid where clause %q", where)
		}
		conditions[field] = v
	}
	return conditions, nil
}

func matchesAll(record map[string]any, conditions map[string]float64) bool {
	for field, want := range conditions {
		if toFloat(record[field]) != want {
			return false
		}
	}
	return true
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return -1 << 62
	}
}

func writeStoreJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
