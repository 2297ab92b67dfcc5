package boataround

// CSS selectors for boataround.com pages.
const (
	// Search results page
	subscribeCloseSelector = "main > div:nth-child(3) > section > div > i"
	pageCountSelector      = "ul.paginator__items li:nth-child(4) a"
	resultLinkSelector     = "section.search-results-list > ul > li > a"

	// Detail page: identity
	nameSelector    = "main h1"
	marinaSelector  = "main .boat-title__location button span:nth-of-type(2)"
	charterSelector = "p.reservation-box__header-charter"
	ratingSelector  = "div.review-score-box"

	// Detail page: reservation policies
	policyRowSelector   = "div[class*='reservation-box__policies-row']"
	policyLabelSelector = "span[class*='reservation-box__policy-cancel']"
	policyPriceSelector = "span[class*='price-box__price']"

	// Detail page: boat info rows
	infoRowSelector   = "section.boat-info-list ul li"
	infoKeySelector   = ".boat-info-list__key"
	infoValueSelector = ".boat-info-list__value"

	// Detail page: extras and excluded charges
	extrasRowSelector   = "section.extras-list label"
	excludedRowSelector = "div[class*='excluded'] div[class*='extra-item']"
	extraNameSelector   = ".extra-item__heading"
	extraPriceSelector  = ".extra-item__price"
)

// Cancellation-policy label phrases, matched by substring against each
// reservation row.
const (
	noRefundLabel   = "Non-refundable"
	partRefundLabel = "Partially refundable"
	freeCancelLabel = "FREE cancellation"
)
