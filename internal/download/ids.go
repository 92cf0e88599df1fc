package download

import "github.com/google/uuid"

// newOperationID tags a background operation in logs ("fetch-<uuid>")
func newOperationID(kind string) string {
	return kind + "-" + uuid.NewString()
}
