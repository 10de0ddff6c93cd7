package service

import (
	"net/http"
	"strconv"

	"ecosnap/internal/catalog"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
)

// qrSize is the rendered label size in pixels.
const qrSize = 256

// binQRHandler renders the QR label printed on a bin: a PNG encoding the
// bin's waste category code, the bare integer the scanner expects.
func (handlers *handlers) binQRHandler(res http.ResponseWriter, req *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(req, "id"))
	if err != nil {
		writeErrorResponse(res, "invalid bin id provided", http.StatusBadRequest)
		return
	}

	bin, ok := catalog.BinByID(id)
	if !ok {
		writeErrorResponse(res, "bin not found", http.StatusNotFound)
		return
	}

	png, err := qrcode.Encode(strconv.Itoa(bin.CategoryID), qrcode.Medium, qrSize)
	if err != nil {
		handlers.log.Sugar().Errorf("Failed to encode bin QR: %s", err)
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "image/png")
	res.WriteHeader(http.StatusOK)
	res.Write(png)
}
