package errors

// 通用错误
const (
	ErrInternalServer = "ERR_INTERNAL_SERVER"
	ErrInvalidParam   = "ERR_INVALID_PARAM"
)

// 文件相关错误码
const (
	ErrEmptyID        = "ERR_EMPTY_ID"
	ErrFileNotFound   = "ERR_FILE_NOT_FOUND"
	ErrNoFilesInForm  = "ERR_NO_FILES_IN_FORM"
	ErrUploadFailed   = "ERR_UPLOAD_FAILED"
	ErrNoFieldsToEdit = "ERR_NO_FIELDS_TO_EDIT"
)
