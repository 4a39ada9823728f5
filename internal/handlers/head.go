package handlers

import (
	"encoding/json"
	"net/http"

	"truescholar.in/portal-web/internal/nav"
	"truescholar.in/portal-web/internal/seo"
)

// HeadData is the payload the rendering layer consumes for one page: head
// metadata, the visible breadcrumb trail and the serialized JSON-LD graph.
type HeadData struct {
	Meta        seo.Meta    `json:"meta"`
	Breadcrumbs []nav.Crumb `json:"breadcrumbs,omitempty"`
	JSONLD      string      `json:"jsonld"`
}

func writeHead(w http.ResponseWriter, status int, data HeadData) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
