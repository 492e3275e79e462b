package article

import "errors"

var (
	// ErrValidation covers empty required fields, bad images and slug collisions.
	ErrValidation = errors.New("Judul, deskripsi, dan isi artikel harus diisi")
	// ErrUpload means the image host failed or returned no URL. Nothing was written.
	ErrUpload = errors.New("Gagal mengunggah gambar")
	// ErrStore wraps query, insert and delete failures of the backing store.
	ErrStore = errors.New("Gagal mengakses database artikel")
	// ErrSaveFailed is returned when the insert succeeded but produced no row.
	ErrSaveFailed = errors.New("Gagal menyimpan artikel")
	ErrNotFound   = errors.New("Artikel tidak ditemukan")
	// ErrNotAuthenticated is only returned by Create; Delete is a silent no-op instead.
	ErrNotAuthenticated = errors.New("Silakan login terlebih dahulu")

	ErrSlugTaken = errors.New("Judul menghasilkan alamat artikel yang sudah dipakai")
	ErrTitleLong = errors.New("Judul maksimal 255 karakter")
)

// Message returns the user-facing text for err, unwrapping to the first known
// sentinel or validation detail.
func Message(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Reason.Error()
	}
	for _, known := range []error{ErrUpload, ErrSaveFailed, ErrNotFound, ErrNotAuthenticated, ErrStore} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// ValidationError carries the specific reason while matching ErrValidation.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string {
	return e.Reason.Error()
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

func invalid(reason error) error {
	return &ValidationError{Reason: reason}
}
