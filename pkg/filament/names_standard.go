package filament

// Well-known header names. Each is an interned singleton: comparing or
// hashing one never touches the heap, and Parse returns the same interned
// form for any casing of these names.
var (
	Accept                          = Name{std: stdAccept}
	AcceptCharset                   = Name{std: stdAcceptCharset}
	AcceptEncoding                  = Name{std: stdAcceptEncoding}
	AcceptLanguage                  = Name{std: stdAcceptLanguage}
	AcceptPatch                     = Name{std: stdAcceptPatch}
	AcceptRanges                    = Name{std: stdAcceptRanges}
	AccessControlAllowCredentials   = Name{std: stdAccessControlAllowCredentials}
	AccessControlAllowHeaders       = Name{std: stdAccessControlAllowHeaders}
	AccessControlAllowMethods       = Name{std: stdAccessControlAllowMethods}
	AccessControlAllowOrigin        = Name{std: stdAccessControlAllowOrigin}
	AccessControlExposeHeaders      = Name{std: stdAccessControlExposeHeaders}
	AccessControlMaxAge             = Name{std: stdAccessControlMaxAge}
	AccessControlRequestHeaders     = Name{std: stdAccessControlRequestHeaders}
	AccessControlRequestMethod      = Name{std: stdAccessControlRequestMethod}
	Age                             = Name{std: stdAge}
	Allow                           = Name{std: stdAllow}
	AltSvc                          = Name{std: stdAltSvc}
	Authorization                   = Name{std: stdAuthorization}
	CacheControl                    = Name{std: stdCacheControl}
	Connection                      = Name{std: stdConnection}
	ContentDisposition              = Name{std: stdContentDisposition}
	ContentEncoding                 = Name{std: stdContentEncoding}
	ContentLanguage                 = Name{std: stdContentLanguage}
	ContentLength                   = Name{std: stdContentLength}
	ContentLocation                 = Name{std: stdContentLocation}
	ContentMD5                      = Name{std: stdContentMD5}
	ContentRange                    = Name{std: stdContentRange}
	ContentSecurityPolicy           = Name{std: stdContentSecurityPolicy}
	ContentSecurityPolicyReportOnly = Name{std: stdContentSecurityPolicyReportOnly}
	ContentType                     = Name{std: stdContentType}
	Cookie                          = Name{std: stdCookie}
	DNT                             = Name{std: stdDNT}
	Date                            = Name{std: stdDate}
	ETag                            = Name{std: stdETag}
	Expect                          = Name{std: stdExpect}
	Expires                         = Name{std: stdExpires}
	Forwarded                       = Name{std: stdForwarded}
	From                            = Name{std: stdFrom}
	Host                            = Name{std: stdHost}
	IfMatch                         = Name{std: stdIfMatch}
	IfModifiedSince                 = Name{std: stdIfModifiedSince}
	IfNoneMatch                     = Name{std: stdIfNoneMatch}
	IfRange                         = Name{std: stdIfRange}
	IfUnmodifiedSince               = Name{std: stdIfUnmodifiedSince}
	LastModified                    = Name{std: stdLastModified}
	KeepAlive                       = Name{std: stdKeepAlive}
	Link                            = Name{std: stdLink}
	Location                        = Name{std: stdLocation}
	MaxForwards                     = Name{std: stdMaxForwards}
	Origin                          = Name{std: stdOrigin}
	Pragma                          = Name{std: stdPragma}
	ProxyAuthenticate               = Name{std: stdProxyAuthenticate}
	ProxyAuthorization              = Name{std: stdProxyAuthorization}
	PublicKeyPins                   = Name{std: stdPublicKeyPins}
	PublicKeyPinsReportOnly         = Name{std: stdPublicKeyPinsReportOnly}
	Range                           = Name{std: stdRange}
	Referer                         = Name{std: stdReferer}
	ReferrerPolicy                  = Name{std: stdReferrerPolicy}
	Refresh                         = Name{std: stdRefresh}
	RetryAfter                      = Name{std: stdRetryAfter}
	Server                          = Name{std: stdServer}
	SetCookie                       = Name{std: stdSetCookie}
	StrictTransportSecurity         = Name{std: stdStrictTransportSecurity}
	TE                              = Name{std: stdTE}
	TK                              = Name{std: stdTK}
	Trailer                         = Name{std: stdTrailer}
	TransferEncoding                = Name{std: stdTransferEncoding}
	TSV                             = Name{std: stdTSV}
	UserAgent                       = Name{std: stdUserAgent}
	Upgrade                         = Name{std: stdUpgrade}
	UpgradeInsecureRequests         = Name{std: stdUpgradeInsecureRequests}
	Vary                            = Name{std: stdVary}
	Via                             = Name{std: stdVia}
	Warning                         = Name{std: stdWarning}
	WWWAuthenticate                 = Name{std: stdWWWAuthenticate}
	XContentTypeOptions             = Name{std: stdXContentTypeOptions}
	XDNSPrefetchControl             = Name{std: stdXDNSPrefetchControl}
	XFrameOptions                   = Name{std: stdXFrameOptions}
	XXSSProtection                  = Name{std: stdXXSSProtection}
)

type standardID uint8

const (
	stdNone standardID = iota
	stdAccept
	stdAcceptCharset
	stdAcceptEncoding
	stdAcceptLanguage
	stdAcceptPatch
	stdAcceptRanges
	stdAccessControlAllowCredentials
	stdAccessControlAllowHeaders
	stdAccessControlAllowMethods
	stdAccessControlAllowOrigin
	stdAccessControlExposeHeaders
	stdAccessControlMaxAge
	stdAccessControlRequestHeaders
	stdAccessControlRequestMethod
	stdAge
	stdAllow
	stdAltSvc
	stdAuthorization
	stdCacheControl
	stdConnection
	stdContentDisposition
	stdContentEncoding
	stdContentLanguage
	stdContentLength
	stdContentLocation
	stdContentMD5
	stdContentRange
	stdContentSecurityPolicy
	stdContentSecurityPolicyReportOnly
	stdContentType
	stdCookie
	stdDNT
	stdDate
	stdETag
	stdExpect
	stdExpires
	stdForwarded
	stdFrom
	stdHost
	stdIfMatch
	stdIfModifiedSince
	stdIfNoneMatch
	stdIfRange
	stdIfUnmodifiedSince
	stdLastModified
	stdKeepAlive
	stdLink
	stdLocation
	stdMaxForwards
	stdOrigin
	stdPragma
	stdProxyAuthenticate
	stdProxyAuthorization
	stdPublicKeyPins
	stdPublicKeyPinsReportOnly
	stdRange
	stdReferer
	stdReferrerPolicy
	stdRefresh
	stdRetryAfter
	stdServer
	stdSetCookie
	stdStrictTransportSecurity
	stdTE
	stdTK
	stdTrailer
	stdTransferEncoding
	stdTSV
	stdUserAgent
	stdUpgrade
	stdUpgradeInsecureRequests
	stdVary
	stdVia
	stdWarning
	stdWWWAuthenticate
	stdXContentTypeOptions
	stdXDNSPrefetchControl
	stdXFrameOptions
	stdXXSSProtection
	stdCount
)

// standardNames maps a standardID to its canonical lowercase spelling.
var standardNames = [stdCount]string{
	stdAccept:                          "accept",
	stdAcceptCharset:                   "accept-charset",
	stdAcceptEncoding:                  "accept-encoding",
	stdAcceptLanguage:                  "accept-language",
	stdAcceptPatch:                     "accept-patch",
	stdAcceptRanges:                    "accept-ranges",
	stdAccessControlAllowCredentials:   "access-control-allow-credentials",
	stdAccessControlAllowHeaders:       "access-control-allow-headers",
	stdAccessControlAllowMethods:       "access-control-allow-methods",
	stdAccessControlAllowOrigin:        "access-control-allow-origin",
	stdAccessControlExposeHeaders:      "access-control-expose-headers",
	stdAccessControlMaxAge:             "access-control-max-age",
	stdAccessControlRequestHeaders:     "access-control-request-headers",
	stdAccessControlRequestMethod:      "access-control-request-method",
	stdAge:                             "age",
	stdAllow:                           "allow",
	stdAltSvc:                          "alt-svc",
	stdAuthorization:                   "authorization",
	stdCacheControl:                    "cache-control",
	stdConnection:                      "connection",
	stdContentDisposition:              "content-disposition",
	stdContentEncoding:                 "content-encoding",
	stdContentLanguage:                 "content-language",
	stdContentLength:                   "content-length",
	stdContentLocation:                 "content-location",
	stdContentMD5:                      "content-md5",
	stdContentRange:                    "content-range",
	stdContentSecurityPolicy:           "content-security-policy",
	stdContentSecurityPolicyReportOnly: "content-security-policy-report-only",
	stdContentType:                     "content-type",
	stdCookie:                          "cookie",
	stdDNT:                             "dnt",
	stdDate:                            "date",
	stdETag:                            "etag",
	stdExpect:                          "expect",
	stdExpires:                         "expires",
	stdForwarded:                       "forwarded",
	stdFrom:                            "from",
	stdHost:                            "host",
	stdIfMatch:                         "if-match",
	stdIfModifiedSince:                 "if-modified-since",
	stdIfNoneMatch:                     "if-none-match",
	stdIfRange:                         "if-range",
	stdIfUnmodifiedSince:               "if-unmodified-since",
	stdLastModified:                    "last-modified",
	stdKeepAlive:                       "keep-alive",
	stdLink:                            "link",
	stdLocation:                        "location",
	stdMaxForwards:                     "max-forwards",
	stdOrigin:                          "origin",
	stdPragma:                          "pragma",
	stdProxyAuthenticate:               "proxy-authenticate",
	stdProxyAuthorization:              "proxy-authorization",
	stdPublicKeyPins:                   "public-key-pins",
	stdPublicKeyPinsReportOnly:         "public-key-pins-report-only",
	stdRange:                           "range",
	stdReferer:                         "referer",
	stdReferrerPolicy:                  "referrer-policy",
	stdRefresh:                         "refresh",
	stdRetryAfter:                      "retry-after",
	stdServer:                          "server",
	stdSetCookie:                       "set-cookie",
	stdStrictTransportSecurity:         "strict-transport-security",
	stdTE:                              "te",
	stdTK:                              "tk",
	stdTrailer:                         "trailer",
	stdTransferEncoding:                "transfer-encoding",
	stdTSV:                             "tsv",
	stdUserAgent:                       "user-agent",
	stdUpgrade:                         "upgrade",
	stdUpgradeInsecureRequests:         "upgrade-insecure-requests",
	stdVary:                            "vary",
	stdVia:                             "via",
	stdWarning:                         "warning",
	stdWWWAuthenticate:                 "www-authenticate",
	stdXContentTypeOptions:             "x-content-type-options",
	stdXDNSPrefetchControl:             "x-dns-prefetch-control",
	stdXFrameOptions:                   "x-frame-options",
	stdXXSSProtection:                  "x-xss-protection",
}

// standardHashes caches the content hash of every standard name so that
// map placement for the common case costs a table load.
var standardHashes [stdCount]uint64

// standardIndex resolves a normalized lowercase name to its standardID.
var standardIndex = make(map[string]standardID, int(stdCount)-1)

func init() {
	for id := stdNone + 1; id < stdCount; id++ {
		standardHashes[id] = contentHash(standardNames[id])
		standardIndex[standardNames[id]] = id
	}
}
