package server

import (
	"encoding/json"
	"github.com/bokysan/basecodec/internal/util/enc"
	"github.com/go-chi/chi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
)

// EncoderInfo describes an encoder in the `/encoders` listing
type EncoderInfo struct {
	Name             string  `json:"name"`
	Code             string  `json:"code"`
	BlocksizeRaw     int     `json:"blocksizeRaw"`
	BlocksizeEncoded int     `json:"blocksizeEncoded"`
	Ratio            float64 `json:"ratio"`
}

// encoderFromRequest resolves the {encoding} URL parameter. It writes the error response itself and
// returns nil when the encoder is not known.
func encoderFromRequest(w http.ResponseWriter, r *http.Request) enc.Encoder {
	encoder, err := enc.ByName(chi.URLParam(r, "encoding"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil
	}
	return encoder
}

func (ws *HttpServer) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	var body io.Reader = r.Body
	if ws.MaxBodySize > 0 {
		body = http.MaxBytesReader(w, r.Body, ws.MaxBodySize)
	}
	data, err := ioutil.ReadAll(body)
	if err != nil {
		log.WithError(err).Debugf("Could not read request body: %v", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		} else {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return nil, false
	}
	return data, true
}

func (ws *HttpServer) encodeHandler(w http.ResponseWriter, r *http.Request) {
	encoder := encoderFromRequest(w, r)
	if encoder == nil {
		return
	}

	data, ok := ws.readBody(w, r)
	if !ok {
		return
	}

	if encoder.ASCII() {
		w.Header().Set("Content-Type", "text/plain; charset=us-ascii")
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	if _, err := io.WriteString(w, encoder.Encode(data)); err != nil {
		log.WithError(err).Warnf("Could not write response: %v", err)
	}
}

func (ws *HttpServer) decodeHandler(w http.ResponseWriter, r *http.Request) {
	encoder := encoderFromRequest(w, r)
	if encoder == nil {
		return
	}

	if strict := r.URL.Query().Get("strict"); strict != "" {
		s, err := strconv.ParseBool(strict)
		if err != nil {
			http.Error(w, errors.Wrapf(err, "Invalid value for strict").Error(), http.StatusBadRequest)
			return
		}
		if b64, ok := encoder.(*enc.Base64Encoder); ok {
			b64.Strict = s
		}
	}

	text, ok := ws.readBody(w, r)
	if !ok {
		return
	}

	data, err := encoder.Decode(string(text))
	if err != nil {
		log.WithError(err).Debugf("Could not decode request: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Warnf("Could not write response: %v", err)
	}
}

func encodersHandler(w http.ResponseWriter, r *http.Request) {
	res := make([]EncoderInfo, 0)
	for _, e := range enc.Encoders() {
		res = append(res, EncoderInfo{
			Name:             e.Name(),
			Code:             string(e.Code()),
			BlocksizeRaw:     e.BlocksizeRaw(),
			BlocksizeEncoded: e.BlocksizeEncoded(),
			Ratio:            enc.Ratio(e),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.WithError(err).Warnf("Could not write response: %v", err)
	}
}
