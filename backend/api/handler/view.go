package handler

import (
	"encoding/gob"
	"errors"
	"net/http"

	"docboard/backend/common"
	codes "docboard/backend/common/errors"
	"docboard/backend/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys for the per-browser view state: which file the viewer shows
// and the last selection the page reported.
const (
	sessionKeyCurrentFile = "current_file_id"
	sessionKeySelection   = "selection"
)

// SelectionReport is the {text, start, end} triple the browser reports on
// mouseup. It is untrusted display state; offsets are not checked against
// the stored content.
type SelectionReport struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func init() {
	// Session values go through gob when stored in cookies.
	gob.Register(SelectionReport{})
}

type setCurrentFileRequest struct {
	Id int64 `json:"id" binding:"required"`
}

// SetCurrentFile points the viewer at a file and responds with the full
// record so the page can render it in one round trip.
func SetCurrentFile(c *gin.Context) {
	var req setCurrentFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	file, err := model.GetFileByID(req.Id)
	if errors.Is(err, model.ErrFileNotFound) {
		common.RespErrorStr(c, http.StatusNotFound, codes.ErrFileNotFound)
		return
	}
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, codes.ErrInternalServer, err)
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeyCurrentFile, req.Id)
	session.Delete(sessionKeySelection)
	if err := session.Save(); err != nil {
		common.RespError(c, http.StatusInternalServerError, codes.ErrInternalServer, err)
		return
	}
	common.RespSuccess(c, file)
}

// GetCurrentFile re-fetches the pointed-at record. A missing pointer, or a
// row deleted since it was selected, is a successful null, not an error.
func GetCurrentFile(c *gin.Context) {
	session := sessions.Default(c)
	value := session.Get(sessionKeyCurrentFile)
	if value == nil {
		common.RespSuccess(c, nil)
		return
	}
	id, ok := value.(int64)
	if !ok {
		common.RespSuccess(c, nil)
		return
	}

	file, err := model.GetFileByID(id)
	if errors.Is(err, model.ErrFileNotFound) {
		common.RespSuccess(c, nil)
		return
	}
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, codes.ErrInternalServer, err)
		return
	}
	common.RespSuccess(c, file)
}

// SetSelection stores the reported selection and echoes it back. Only
// negative values are clamped; the report is display-only state.
func SetSelection(c *gin.Context) {
	var report SelectionReport
	if err := c.ShouldBindJSON(&report); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}
	if report.Start < 0 {
		report.Start = 0
	}
	if report.End < report.Start {
		report.End = report.Start
	}

	session := sessions.Default(c)
	session.Set(sessionKeySelection, report)
	if err := session.Save(); err != nil {
		common.RespError(c, http.StatusInternalServerError, codes.ErrInternalServer, err)
		return
	}
	common.RespSuccess(c, report)
}

func GetSelection(c *gin.Context) {
	session := sessions.Default(c)
	value := session.Get(sessionKeySelection)
	if value == nil {
		common.RespSuccess(c, nil)
		return
	}
	report, ok := value.(SelectionReport)
	if !ok {
		common.RespSuccess(c, nil)
		return
	}
	common.RespSuccess(c, report)
}
