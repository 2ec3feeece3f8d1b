package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"pronet-api/internal/application/ports"
	domain "pronet-api/internal/domain/media"
	"pronet-api/internal/domain/user"
	"pronet-api/internal/infrastructure/mq"
)

const maxBaseNameLen = 100

var windowsReserved = map[string]struct{}{
	"con": {}, "prn": {}, "aux": {}, "nul": {},
	"com1": {}, "com2": {}, "com3": {}, "com4": {}, "com5": {}, "com6": {}, "com7": {}, "com8": {}, "com9": {},
	"lpt1": {}, "lpt2": {}, "lpt3": {}, "lpt4": {}, "lpt5": {}, "lpt6": {}, "lpt7": {}, "lpt8": {}, "lpt9": {},
}

// MediaService drives one upload from raw multipart bytes to a durable
// manifest: validate, name, normalize, derive, persist. Any failure
// after the first write removes everything the attempt persisted.
type MediaService struct {
	store    ports.AssetStore
	policies domain.Policies
	mq       ports.RabbitMQ
	mCounter *prometheus.CounterVec
}

func NewMediaService(
	store ports.AssetStore,
	policies domain.Policies,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.MediaService {
	return &MediaService{
		store:    store,
		policies: policies,
		mq:       rabbit,
		mCounter: mCounter,
	}
}

func (ms *MediaService) Upload(
	ctx context.Context,
	owner user.UUID,
	purpose domain.Purpose,
	fh *multipart.FileHeader,
) (*domain.UploadManifest, error) {
	pol, ok := ms.policies[purpose]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPurpose, purpose)
	}

	data, err := readBounded(fh, pol.MaxBytes)
	if err != nil {
		return nil, err
	}

	det, err := domain.Detect(data, sanitizeFileName(fh.Filename), pol)
	if err != nil {
		return nil, err
	}

	base, err := domain.NewBaseName(owner.String(), purpose)
	if err != nil {
		return nil, err
	}

	normalized, err := domain.Normalize(data, det, pol)
	if err != nil {
		return nil, err
	}

	manifest, err := ms.persist(ctx, owner, purpose, base, pol, normalized)
	if err != nil {
		return nil, err
	}

	if ms.mq != nil {
		payload, _ := json.Marshal(struct {
			BaseID  string `json:"base_id"`
			Purpose string `json:"purpose"`
			Name    string `json:"name"`
			Size    int64  `json:"size_bytes"`
		}{
			BaseID:  manifest.BaseID,
			Purpose: string(purpose),
			Name:    manifest.Original.Name,
			Size:    manifest.Original.SizeBytes,
		})

		ms.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Action:  mq.ActionAssetUploaded,
			UserID:  owner.String(),
			Payload: payload,
		}
	}

	if ms.mCounter != nil {
		ms.mCounter.WithLabelValues("assets_uploaded_total").Inc()
	}

	return manifest, nil
}

// persist writes the original then every derivative. A base-name
// collision on the original gets one retry under a fresh name; any
// later failure unwinds the artifacts written so far.
func (ms *MediaService) persist(
	ctx context.Context,
	owner user.UUID,
	purpose domain.Purpose,
	base string,
	pol domain.Policy,
	n *domain.Normalized,
) (*domain.UploadManifest, error) {
	name := domain.ObjectName(base, n.Format)

	err := ms.store.Put(ctx, purpose, name, n.Data)
	if errors.Is(err, domain.ErrAlreadyExists) {
		base, err = domain.NewBaseName(owner.String(), purpose)
		if err != nil {
			return nil, err
		}
		name = domain.ObjectName(base, n.Format)
		err = ms.store.Put(ctx, purpose, name, n.Data)
	}
	if err != nil {
		return nil, err
	}

	manifest := &domain.UploadManifest{
		BaseID:  base,
		Purpose: purpose,
		Original: domain.StoredAsset{
			Name:      name,
			SizeBytes: int64(len(n.Data)),
			Kind:      domain.KindOriginal,
		},
	}

	for _, spec := range pol.Derivatives {
		encoded, err := domain.RenderDerivative(n.Raster, spec)
		if err != nil {
			ms.unwind(ctx, manifest)
			return nil, err
		}

		dName := domain.DerivativeName(base, spec)
		if err = ms.store.Put(ctx, purpose, dName, encoded); err != nil {
			ms.unwind(ctx, manifest)
			return nil, err
		}

		manifest.Derivatives = append(manifest.Derivatives, domain.StoredAsset{
			Name:      dName,
			SizeBytes: int64(len(encoded)),
			Kind:      spec.Tag,
		})
	}

	return manifest, nil
}

// unwind removes a partial upload; it must run even when the request
// context is already canceled.
func (ms *MediaService) unwind(ctx context.Context, m *domain.UploadManifest) {
	cleanupCtx := context.WithoutCancel(ctx)
	for _, name := range m.Names() {
		_ = ms.store.Delete(cleanupCtx, m.Purpose, name)
	}
}

func (ms *MediaService) Discard(ctx context.Context, m *domain.UploadManifest) {
	if m == nil {
		return
	}
	ms.unwind(ctx, m)
}

func (ms *MediaService) Fetch(ctx context.Context, purpose domain.Purpose, name string) ([]byte, string, error) {
	if _, ok := ms.policies[purpose]; !ok {
		return nil, "", fmt.Errorf("%w: %q", domain.ErrUnknownPurpose, purpose)
	}
	if !domain.ValidName(name) {
		return nil, "", domain.ErrNotFound
	}

	data, err := ms.store.Get(ctx, purpose, name)
	if err != nil {
		return nil, "", err
	}

	return data, contentTypeForName(name), nil
}

func contentTypeForName(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".jpg", ".jpeg":
		return domain.FormatJPEG.MimeType()
	case ".png":
		return domain.FormatPNG.MimeType()
	case ".gif":
		return domain.FormatGIF.MimeType()
	case ".webp":
		return domain.FormatWebP.MimeType()
	}
	return "application/octet-stream"
}

// readBounded reads at most max+1 bytes so oversize payloads are caught
// from the measured size, never the multipart header the client sent.
func readBounded(fh *multipart.FileHeader, max int64) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWriteFailure, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, max+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWriteFailure, err)
	}
	if len(data) == 0 {
		return nil, domain.ErrEmptyPayload
	}
	if int64(len(data)) > max {
		return nil, fmt.Errorf("%w: limit %d bytes", domain.ErrPayloadTooLarge, max)
	}

	return data, nil
}

// sanitizeFileName make file name ASCII standard
func sanitizeFileName(original string) string {
	if original == "" {
		return "file"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	ext := strings.ToLower(path.Ext(s))
	base := strings.TrimSuffix(s, ext)

	//  [a-z0-9], '-' и '_', dot/space → '-'
	var b strings.Builder
	b.Grow(len(base))
	prevDash := false
	for _, r := range base {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case r == '-' || r == '_':
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		case r == '.' || unicode.IsSpace(r):
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		default:
		}
	}
	base = strings.Trim(b.String(), "-")

	if base == "" {
		base = "file"
	}
	if _, bad := windowsReserved[base]; bad {
		base = "_" + base
	}

	for utf8.RuneCountInString(base)+len(ext) > maxBaseNameLen {
		_, size := utf8.DecodeLastRuneInString(base)
		if size <= 0 || size > len(base) {
			break
		}
		base = base[:len(base)-size]
	}

	return base + ext
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
