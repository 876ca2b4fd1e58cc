package domain

// FilePurpose declares what an uploaded file will be used for.
type FilePurpose string

const (
	FilePurposeDisputeEvidence FilePurpose = "dispute_evidence"
)

// UploadFileRequest carries a file to be stored with the processor.
type UploadFileRequest struct {
	Purpose  FilePurpose
	FileName string
	// FileType is the MIME type of the file content.
	FileType string
	FileSize int
	File     []byte
}

// UploadFileResponse returns the processor's id for the stored file.
type UploadFileResponse struct {
	ProviderFileID string
}

// RetrieveFileRequest fetches a previously uploaded file.
type RetrieveFileRequest struct {
	ProviderFileID string
}

// RetrieveFileResponse returns the raw file content.
type RetrieveFileResponse struct {
	FileData []byte
}
