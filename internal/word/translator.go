package word

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/englishlearning/internal/telemetry/metrics"
	"github.com/2beens/englishlearning/internal/telemetry/tracing"
)

// example API call
// http://api.fanyi.baidu.com/api/trans/vip/translate?q=apple&from=en&to=zh&appid=...&salt=...&sign=...

const (
	DefaultTranslateApiURL = "http://api.fanyi.baidu.com"
	translatePath          = "/api/trans/vip/translate"
	translationCacheExpire = 24 * 60 * 60 // seconds
	translateTimeout       = 10 * time.Second
)

type baiduResponse struct {
	From        string `json:"from"`
	To          string `json:"to"`
	TransResult []struct {
		Src string `json:"src"`
		Dst string `json:"dst"`
	} `json:"trans_result"`
	ErrorCode json.Number `json:"error_code"`
	ErrorMsg  string      `json:"error_msg"`
}

type Translator struct {
	cache          *freecache.Cache
	apiURL         string
	appID          string
	appKey         string
	httpClient     *http.Client
	metricsManager *metrics.Manager
	// salt generator, fixed in tests
	saltFunc func() string
}

func NewTranslator(
	apiURL, appID, appKey string,
	httpClient *http.Client,
	metricsManager *metrics.Manager,
) *Translator {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	if apiURL == "" {
		apiURL = DefaultTranslateApiURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if httpClient.Timeout == 0 {
		httpClient.Timeout = translateTimeout
	}

	return &Translator{
		cache:          freecache.NewCache(cacheSize),
		apiURL:         strings.TrimSuffix(apiURL, "/"),
		appID:          appID,
		appKey:         appKey,
		httpClient:     httpClient,
		metricsManager: metricsManager,
		saltFunc: func() string {
			return strconv.FormatInt(rand.Int64N(1_000_000_000), 10)
		},
	}
}

func (t *Translator) IsMock() bool {
	return t.appID == "" || t.appKey == ""
}

// Translate translates an english word to chinese. Without provider credentials
// a placeholder translation flagged with IsMock is returned.
func (t *Translator) Translate(ctx context.Context, word string) (_ *Translation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "translator.translate")
	span.SetAttributes(attribute.String("word", word))
	defer func() { tracing.EndSpan(span, err) }()

	word = strings.TrimSpace(word)
	if word == "" {
		return nil, ErrEmptyWord
	}

	if t.IsMock() {
		log.Warnf("translation provider credentials missing, mock translation for: %s", word)
		t.count("mock")
		return &Translation{
			Src:    word,
			Dst:    "[mock translation] " + word,
			IsMock: true,
		}, nil
	}

	cacheKey := []byte(strings.ToLower(word))
	if cached, err := t.cache.Get(cacheKey); err == nil {
		translation := &Translation{}
		if err := json.Unmarshal(cached, translation); err == nil {
			log.Tracef("found translation for %s in cache", word)
			t.count("cache")
			return translation, nil
		} else {
			log.Errorf("failed to unmarshal cached translation for %s: %s", word, err)
		}
	}

	translation, err := t.callProvider(ctx, word)
	if err != nil {
		return nil, err
	}
	t.count("provider")

	if translationBytes, err := json.Marshal(translation); err == nil {
		if err := t.cache.Set(cacheKey, translationBytes, translationCacheExpire); err != nil {
			log.Errorf("failed to cache translation for %s: %s", word, err)
		}
	}

	return translation, nil
}

func (t *Translator) callProvider(ctx context.Context, word string) (*Translation, error) {
	salt := t.saltFunc()
	params := url.Values{}
	params.Set("q", word)
	params.Set("from", "en")
	params.Set("to", "zh")
	params.Set("appid", t.appID)
	params.Set("salt", salt)
	params.Set("sign", Sign(t.appID, word, salt, t.appKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.apiURL+translatePath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read translate api response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrTranslationFailed, resp.StatusCode)
	}

	baiduResp := &baiduResponse{}
	if err := json.Unmarshal(respBytes, baiduResp); err != nil {
		return nil, fmt.Errorf("unmarshal translate api response: %w", err)
	}

	if baiduResp.ErrorCode != "" && baiduResp.ErrorCode != "52000" {
		return nil, fmt.Errorf("%w: %s %s", ErrTranslationFailed, baiduResp.ErrorCode, baiduResp.ErrorMsg)
	}
	if len(baiduResp.TransResult) == 0 {
		return nil, fmt.Errorf("%w: empty result", ErrTranslationFailed)
	}

	return &Translation{
		Src: baiduResp.TransResult[0].Src,
		Dst: baiduResp.TransResult[0].Dst,
	}, nil
}

func (t *Translator) count(source string) {
	if t.metricsManager != nil {
		t.metricsManager.CounterTranslations.WithLabelValues(source).Inc()
	}
}

// Sign is the request signature the provider expects: md5(appid + q + salt + key), hex encoded.
func Sign(appID, query, salt, appKey string) string {
	sum := md5.Sum([]byte(appID + query + salt + appKey))
	return hex.EncodeToString(sum[:])
}
