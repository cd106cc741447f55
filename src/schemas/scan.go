package schemas

// ScanRequest carries a value a client already decoded on its own.
type ScanRequest struct {
	Value string `json:"value" validate:"required"`
}
