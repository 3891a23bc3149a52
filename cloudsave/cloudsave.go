package cloudsave

import (
	"fmt"

	tapsdk "github.com/taptap/tapsdk-go"
	"github.com/taptap/tapsdk-go/errors"
	"github.com/taptap/tapsdk-go/internal/ffi"
	"github.com/taptap/tapsdk-go/sdk"
)

// Backend-enforced limits, checked client-side before dispatch.
const (
	MaxNameLen    = 60   // bytes
	MaxSummaryLen = 500  // bytes
	MaxExtraLen   = 1000 // bytes

	MaxSaveSize  = 10 << 20 // enforced by the vendor library at dispatch
	MaxCoverSize = 512 << 10
)

// CloudSave wraps the vendor library's cloud-save interface for the current
// session. Obtain it with Get after sdk.Init.
type CloudSave struct {
	s      *sdk.SDK
	handle uintptr
}

// Get returns the cloud-save interface of the live SDK instance.
func Get() (*CloudSave, error) {
	s := sdk.Active()
	if s == nil {
		return nil, errors.NotInitialized("cloudsave.get")
	}
	h := ffi.P.CloudSave()
	if h == 0 {
		return nil, errors.New(errors.PhaseCall, errors.KindUnsupported).
			Op("cloudsave.get").
			Detail("cloud-save interface unavailable").
			Build()
	}
	return &CloudSave{s: s, handle: h}, nil
}

// CreateRequest describes a new save. Name and Summary are required;
// DataFilePath must point at a readable file of at most 10MB. CoverFilePath
// is optional (at most 512KB, PNG or JPEG).
type CreateRequest struct {
	Name          string
	Summary       string
	Extra         string
	Playtime      uint32 // seconds
	DataFilePath  string
	CoverFilePath string
}

// UpdateRequest replaces the content of an existing save identified by UUID.
// Field rules match CreateRequest.
type UpdateRequest struct {
	UUID          string
	Name          string
	Summary       string
	Extra         string
	Playtime      uint32
	DataFilePath  string
	CoverFilePath string
}

// List requests the save archive list. The result arrives as a
// CloudSaveList event carrying requestID.
func (c *CloudSave) List(requestID int64) error {
	const op = "cloudsave.list"
	if err := c.guard(op); err != nil {
		return err
	}
	return c.dispatch(op, requestID, ffi.P.CloudSaveList(c.handle, requestID))
}

// Create uploads a new save. The result arrives as a CloudSaveCreate event.
func (c *CloudSave) Create(requestID int64, req CreateRequest) error {
	const op = "cloudsave.create"
	if err := c.guard(op); err != nil {
		return err
	}
	if err := validateContent(op, req.Name, req.Summary, req.Extra, req.DataFilePath); err != nil {
		return err
	}
	raw := ffi.CloudSaveCreateRequest{
		Name:          ffi.CString(req.Name),
		Summary:       ffi.CString(req.Summary),
		Extra:         ffi.CStringOrNil(req.Extra),
		Playtime:      req.Playtime,
		DataFilePath:  ffi.CString(req.DataFilePath),
		CoverFilePath: ffi.CStringOrNil(req.CoverFilePath),
	}
	return c.dispatch(op, requestID, ffi.P.CloudSaveCreate(c.handle, requestID, &raw))
}

// Update replaces an existing save. The result arrives as a CloudSaveUpdate
// event.
func (c *CloudSave) Update(requestID int64, req UpdateRequest) error {
	const op = "cloudsave.update"
	if err := c.guard(op); err != nil {
		return err
	}
	if req.UUID == "" {
		return errors.InvalidArgument(op, "save UUID must not be empty")
	}
	if err := validateContent(op, req.Name, req.Summary, req.Extra, req.DataFilePath); err != nil {
		return err
	}
	raw := ffi.CloudSaveUpdateRequest{
		UUID:          ffi.CString(req.UUID),
		Name:          ffi.CString(req.Name),
		Summary:       ffi.CString(req.Summary),
		Extra:         ffi.CStringOrNil(req.Extra),
		Playtime:      req.Playtime,
		DataFilePath:  ffi.CString(req.DataFilePath),
		CoverFilePath: ffi.CStringOrNil(req.CoverFilePath),
	}
	return c.dispatch(op, requestID, ffi.P.CloudSaveUpdate(c.handle, requestID, &raw))
}

// Delete removes a save. The result arrives as a CloudSaveDelete event
// echoing the UUID.
func (c *CloudSave) Delete(requestID int64, uuid string) error {
	const op = "cloudsave.delete"
	if err := c.guard(op); err != nil {
		return err
	}
	if uuid == "" {
		return errors.InvalidArgument(op, "save UUID must not be empty")
	}
	return c.dispatch(op, requestID, ffi.P.CloudSaveDelete(c.handle, requestID, uuid))
}

// GetData downloads a save's data file. The result arrives as a
// CloudSaveGetData event carrying the bytes.
func (c *CloudSave) GetData(requestID int64, uuid, fileID string) error {
	const op = "cloudsave.get_data"
	if err := c.guard(op); err != nil {
		return err
	}
	if uuid == "" || fileID == "" {
		return errors.InvalidArgument(op, "save UUID and file ID must not be empty")
	}
	raw := ffi.CloudSaveGetFileRequest{
		UUID:   ffi.CString(uuid),
		FileID: ffi.CString(fileID),
	}
	return c.dispatch(op, requestID, ffi.P.CloudSaveGetData(c.handle, requestID, &raw))
}

// GetCover downloads a save's cover image. The result arrives as a
// CloudSaveGetCover event.
func (c *CloudSave) GetCover(requestID int64, uuid, fileID string) error {
	const op = "cloudsave.get_cover"
	if err := c.guard(op); err != nil {
		return err
	}
	if uuid == "" || fileID == "" {
		return errors.InvalidArgument(op, "save UUID and file ID must not be empty")
	}
	raw := ffi.CloudSaveGetFileRequest{
		UUID:   ffi.CString(uuid),
		FileID: ffi.CString(fileID),
	}
	return c.dispatch(op, requestID, ffi.P.CloudSaveGetCover(c.handle, requestID, &raw))
}

func (c *CloudSave) guard(op string) error {
	if !c.s.Ready() {
		return errors.Closed(op)
	}
	return nil
}

// dispatch maps a raw dispatch result to an error and, on acceptance,
// registers the request as pending.
func (c *CloudSave) dispatch(op string, requestID int64, result uint32) error {
	if r := tapsdk.DispatchResult(result); r != tapsdk.DispatchOK {
		return errors.RequestRejected(op, r)
	}
	c.s.Track(requestID, op)
	return nil
}

func validateContent(op, name, summary, extra, dataFilePath string) error {
	if name == "" {
		return errors.InvalidArgument(op, "save name must not be empty")
	}
	if len(name) > MaxNameLen {
		return errors.InvalidArgument(op, fmt.Sprintf("save name exceeds %d bytes", MaxNameLen))
	}
	if summary == "" {
		return errors.InvalidArgument(op, "save summary must not be empty")
	}
	if len(summary) > MaxSummaryLen {
		return errors.InvalidArgument(op, fmt.Sprintf("save summary exceeds %d bytes", MaxSummaryLen))
	}
	if len(extra) > MaxExtraLen {
		return errors.InvalidArgument(op, fmt.Sprintf("extra data exceeds %d bytes", MaxExtraLen))
	}
	if dataFilePath == "" {
		return errors.InvalidArgument(op, "save data file path must not be empty")
	}
	return nil
}
