package media

const KindOriginal = "original"

type (
	// StoredAsset is one durably persisted artifact. A name, once handed
	// to a caller, is never rebound to different bytes.
	StoredAsset struct {
		Name      string
		SizeBytes int64
		Kind      string
	}

	// UploadManifest is the result of one completed orchestration: the
	// original plus every derivative, all sharing BaseID so they can be
	// correlated and reaped together.
	UploadManifest struct {
		BaseID      string
		Purpose     Purpose
		Original    StoredAsset
		Derivatives []StoredAsset
	}
)

func (m *UploadManifest) Names() []string {
	names := make([]string, 0, 1+len(m.Derivatives))
	names = append(names, m.Original.Name)
	for _, d := range m.Derivatives {
		names = append(names, d.Name)
	}
	return names
}

// Derivative returns the stored derivative carrying the given tag, or nil.
func (m *UploadManifest) Derivative(tag string) *StoredAsset {
	for i := range m.Derivatives {
		if m.Derivatives[i].Kind == tag {
			return &m.Derivatives[i]
		}
	}
	return nil
}
