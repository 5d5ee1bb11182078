package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"unicode/utf8"

	"docboard/backend/common"
	codes "docboard/backend/common/errors"
	"docboard/backend/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type createFileRequest struct {
	Name    string `json:"name" binding:"required"`
	Content string `json:"content" binding:"required"`
	Owner   string `json:"owner"`
	Memo    string `json:"memo"`
}

// uploadResult reports the outcome for one file of a batch upload.
type uploadResult struct {
	Name  string `json:"name"`
	Id    int64  `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func bindErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return codes.ErrInvalidParam + ": field " + validationErrs[0].Field() + " failed on " + validationErrs[0].Tag()
	}
	return codes.ErrInvalidParam
}

func parseFileID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		common.RespErrorStr(c, http.StatusBadRequest, codes.ErrEmptyID)
		return 0, false
	}
	return id, true
}

// UploadFiles handles the browser upload form. Each file is processed
// independently; one bad file never aborts the batch.
func UploadFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		common.RespError(c, http.StatusBadRequest, codes.ErrInvalidParam, err)
		return
	}
	files := form.File["file"]
	if len(files) == 0 {
		common.RespErrorStr(c, http.StatusBadRequest, codes.ErrNoFilesInForm)
		return
	}

	results := make([]uploadResult, 0, len(files))
	failed := 0
	for _, fileHeader := range files {
		id, err := saveUploadedFile(fileHeader)
		if err != nil {
			common.SysError(fmt.Sprintf("failed to upload file %s: %s", fileHeader.Filename, err.Error()))
			results = append(results, uploadResult{Name: fileHeader.Filename, Error: err.Error()})
			failed++
			continue
		}
		results = append(results, uploadResult{Name: fileHeader.Filename, Id: id})
	}

	if failed == len(files) {
		common.RespErrorWithData(c, http.StatusInternalServerError, codes.ErrUploadFailed, results)
		return
	}
	common.RespSuccess(c, results)
}

func saveUploadedFile(fileHeader *multipart.FileHeader) (int64, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return 0, fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return 0, fmt.Errorf("read uploaded file: %w", err)
	}
	if !utf8.Valid(content) {
		return 0, errors.New("file is not valid UTF-8 text")
	}

	return model.CreateFile(fileHeader.Filename, string(content), "", "")
}

// CreateFile is the direct JSON create path, mainly for API clients.
func CreateFile(c *gin.Context) {
	var req createFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	id, err := model.CreateFile(req.Name, req.Content, req.Owner, req.Memo)
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, codes.ErrInternalServer, err)
		return
	}
	common.RespSuccess(c, gin.H{"id": id})
}

func GetAllFiles(c *gin.Context) {
	files, err := model.GetAllFiles()
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, codes.ErrInternalServer, err)
		return
	}
	common.RespSuccess(c, files)
}

func SearchFiles(c *gin.Context) {
	keyword := c.Query("keyword")
	files, err := model.SearchFiles(keyword)
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, codes.ErrInternalServer, err)
		return
	}
	common.RespSuccess(c, files)
}

func GetFile(c *gin.Context) {
	id, ok := parseFileID(c)
	if !ok {
		return
	}
	file, err := model.GetFileByID(id)
	if errors.Is(err, model.ErrFileNotFound) {
		common.RespErrorStr(c, http.StatusNotFound, codes.ErrFileNotFound)
		return
	}
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, codes.ErrInternalServer, err)
		return
	}
	common.RespSuccess(c, file)
}

func UpdateFile(c *gin.Context) {
	id, ok := parseFileID(c)
	if !ok {
		return
	}
	var update model.FileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}
	if update.Name == nil && update.Content == nil && update.Memo == nil {
		common.RespErrorStr(c, http.StatusBadRequest, codes.ErrNoFieldsToEdit)
		return
	}

	affected, err := model.UpdateFile(id, update)
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, codes.ErrInternalServer, err)
		return
	}
	if !affected {
		common.RespErrorStr(c, http.StatusNotFound, codes.ErrFileNotFound)
		return
	}
	common.RespSuccessStr(c, "file updated")
}

func DeleteFile(c *gin.Context) {
	id, ok := parseFileID(c)
	if !ok {
		return
	}
	deleted, err := model.DeleteFile(id)
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, codes.ErrInternalServer, err)
		return
	}
	if !deleted {
		common.RespErrorStr(c, http.StatusNotFound, codes.ErrFileNotFound)
		return
	}
	common.RespSuccessStr(c, "file deleted")
}
