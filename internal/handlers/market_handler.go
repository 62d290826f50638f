package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "coinpulse/internal/errors"
	"coinpulse/internal/market"
	"coinpulse/internal/pagination"
)

// MarketHandler handles market data requests.
type MarketHandler struct {
	service market.Querier
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(service market.Querier) *MarketHandler {
	return &MarketHandler{service: service}
}

// ListAssets handles listing assets, optionally filtered by category.
// @Summary     List assets
// @Description Get a paginated list of assets, optionally filtered by category. Unknown categories return an empty list.
// @Tags        markets
// @Produce     json
// @Param       category  query string false "Category filter (all, popular, defi, layer1, stablecoin, new_listing)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[market.Asset] "Paginated assets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /markets [get]
func (h *MarketHandler) ListAssets(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category := c.DefaultQuery("category", market.CategoryAll)
	assets := h.service.ByCategory(category)

	c.JSON(http.StatusOK, pagination.Paginate(assets, page))
}

// GetAsset handles retrieving a single asset.
// @Summary     Get asset by ID
// @Description Get a single asset snapshot by its identifier
// @Tags        markets
// @Produce     json
// @Param       id path string true "Asset ID (e.g. bitcoin)"
// @Success     200 {object} map[string]market.Asset "Asset snapshot"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /markets/{id} [get]
func (h *MarketHandler) GetAsset(c *gin.Context) {
	asset, err := h.service.Get(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// SearchAssets handles free-text asset search.
// @Summary     Search assets
// @Description Case-insensitive substring search over name, symbol, and tags
// @Tags        markets
// @Produce     json
// @Param       q query string true "Search query"
// @Success     200 {object} map[string][]market.Asset "Matching assets"
// @Failure     400 {object} ErrorResponse "Missing query"
// @Router      /markets/search [get]
func (h *MarketHandler) SearchAssets(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "q is required"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"assets": h.service.Search(query)})
}

// TopMoversURI binds the movers ranking path parameter.
type TopMoversURI struct {
	Kind string `uri:"kind" binding:"required,mover_kind"`
}

// GetTopMovers handles the gainers/losers/volume rankings.
// @Summary     Top movers
// @Description Top 10 assets by 24h gain, 24h loss, or volume
// @Tags        markets
// @Produce     json
// @Param       kind path string true "Ranking kind (gainers, losers, volume)"
// @Success     200 {object} map[string][]market.Asset "Ranked assets"
// @Failure     400 {object} ErrorResponse "Unknown kind"
// @Router      /markets/movers/{kind} [get]
func (h *MarketHandler) GetTopMovers(c *gin.Context) {
	var uri TopMoversURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown movers kind"))
		return
	}

	kind, _ := market.ParseMoverKind(uri.Kind)
	c.JSON(http.StatusOK, gin.H{"assets": h.service.TopMovers(kind)})
}

// GetTrending handles the trending assets list.
// @Summary     Trending assets
// @Description Assets moving more than 5% in either direction, by magnitude
// @Tags        markets
// @Produce     json
// @Param       limit query int false "Max results (default 10)"
// @Success     200 {object} map[string][]market.Asset "Trending assets"
// @Failure     400 {object} ErrorResponse "Invalid limit"
// @Router      /markets/trending [get]
func (h *MarketHandler) GetTrending(c *gin.Context) {
	limit, err := parseLimit(c, "limit")
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assets": h.service.Trending(limit)})
}

// TopAssetsQuery binds the top assets query parameters.
type TopAssetsQuery struct {
	By    string `form:"by,default=market_cap" binding:"omitempty,top_sort"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
}

// GetTopAssets handles the top-N by market cap or volume.
// @Summary     Top assets
// @Description Top assets by market cap (default) or 24h volume
// @Tags        markets
// @Produce     json
// @Param       by    query string false "Sort key (market_cap, volume)"
// @Param       limit query int    false "Max results (default 50)"
// @Success     200 {object} map[string][]market.Asset "Top assets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /markets/top [get]
func (h *MarketHandler) GetTopAssets(c *gin.Context) {
	var query TopAssetsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var assets []*market.Asset
	if query.By == "volume" {
		assets = h.service.ByVolume(query.Limit)
	} else {
		assets = h.service.ByMarketCap(query.Limit)
	}

	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

// GetSummary handles the market-wide aggregate figures.
// @Summary     Market summary
// @Description Total market cap, volume, dominance ratios, and asset count
// @Tags        markets
// @Produce     json
// @Success     200 {object} map[string]market.MarketSummary "Market summary"
// @Router      /markets/summary [get]
func (h *MarketHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"summary": h.service.Summary()})
}

// RefreshMarket forces an immediate evolution pass.
// @Summary     Refresh market data
// @Description Force a data refresh ahead of the normal interval
// @Tags        markets
// @Produce     json
// @Success     200 {object} map[string]string "Refresh completed"
// @Router      /markets/refresh [post]
func (h *MarketHandler) RefreshMarket(c *gin.Context) {
	if err := h.service.Refresh(c.Request.Context()); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
}
