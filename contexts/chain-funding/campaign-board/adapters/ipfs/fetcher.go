package ipfs

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fundboard/contexts/chain-funding/campaign-board/domain/contentref"
	"fundboard/contexts/chain-funding/campaign-board/domain/entities"
	"fundboard/contexts/chain-funding/campaign-board/ports"
)

// DefaultGateways is the ordered fallback list used when no gateway
// configuration is supplied. The first entry doubles as the canonical
// gateway for image rewriting.
var DefaultGateways = []string{
	"https://ipfs.io/ipfs/",
	"https://cloudflare-ipfs.com/ipfs/",
	"https://dweb.link/ipfs/",
}

const maxDocumentBytes = 1 << 20 // metadata documents are small JSON files

// Fetcher resolves content-addressed references by walking an ordered list
// of HTTPS gateways, one request per gateway, stopping at the first success.
// Every failure mode (empty reference, transport error, non-2xx status,
// malformed JSON) degrades to a nil document; nothing is escalated.
type Fetcher struct {
	Gateways []string
	Client   *http.Client
	Metrics  ports.MetricsRecorder
	Logger   *slog.Logger
}

func NewFetcher(gateways []string, metrics ports.MetricsRecorder, logger *slog.Logger) *Fetcher {
	if len(gateways) == 0 {
		gateways = DefaultGateways
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		Gateways: append([]string(nil), gateways...),
		Client:   &http.Client{Timeout: 15 * time.Second},
		Metrics:  metrics,
		Logger:   logger,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, reference string) *entities.Metadata {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil
	}

	for _, gateway := range f.Gateways {
		body, ok := f.tryGateway(ctx, gateway, contentref.Resolve(gateway, reference))
		if !ok {
			continue
		}
		// First successful response wins; a parse failure here means the
		// document itself is bad, so no further gateway is consulted.
		var metadata entities.Metadata
		if err := json.Unmarshal(body, &metadata); err != nil {
			f.Logger.Warn("metadata document is not valid JSON",
				"event", "ipfs_metadata_malformed",
				"module", "chain-funding/campaign-board",
				"layer", "adapter",
				"gateway", gateway,
				"reference", reference,
				"error", err.Error(),
			)
			return nil
		}
		return &metadata
	}

	f.Logger.Warn("all gateways failed for reference",
		"event", "ipfs_gateways_exhausted",
		"module", "chain-funding/campaign-board",
		"layer", "adapter",
		"reference", reference,
		"gateways", len(f.Gateways),
	)
	return nil
}

func (f *Fetcher) tryGateway(ctx context.Context, gateway, url string) ([]byte, bool) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.recordAttempt(gateway, false)
		return nil, false
	}
	request.Header.Set("Accept", "application/json")

	response, err := f.Client.Do(request)
	if err != nil {
		f.recordAttempt(gateway, false)
		f.Logger.Warn("gateway request failed",
			"event", "ipfs_gateway_failed",
			"module", "chain-funding/campaign-board",
			"layer", "adapter",
			"gateway", gateway,
			"error", err.Error(),
		)
		return nil, false
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		f.recordAttempt(gateway, false)
		f.Logger.Warn("gateway returned non-success status",
			"event", "ipfs_gateway_failed",
			"module", "chain-funding/campaign-board",
			"layer", "adapter",
			"gateway", gateway,
			"status", response.StatusCode,
		)
		return nil, false
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, maxDocumentBytes))
	if err != nil {
		f.recordAttempt(gateway, false)
		return nil, false
	}
	f.recordAttempt(gateway, true)
	return body, true
}

func (f *Fetcher) recordAttempt(gateway string, success bool) {
	if f.Metrics != nil {
		f.Metrics.RecordGatewayRequest(gateway, success)
	}
}
