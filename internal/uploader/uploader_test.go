package uploader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/berggren/turbinia/internal/evidence"
)

func TestObjectKey(t *testing.T) {
	ev := evidence.New(evidence.TypeBulkExtractorOutput, "/var/lib/turbinia/output/disk.dd.tar.gz")

	key := ObjectKey(ev)
	assert.Equal(t, evidence.TypeBulkExtractorOutput+"/"+ev.ID+"/disk.dd.tar.gz", key)
}
