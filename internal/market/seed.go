package market

// seedBaseline anchors the deterministic parts of seeding (initial
// cosmetic fields, ATH/ATL dates). Unix seconds for 2025-01-01T00:00:00Z.
const seedBaseline int64 = 1735689600

// seedEntry is the compact form an asset is seeded from. Baseline prices
// and supplies are plausible figures, not live data; maxSupply 0 means
// uncapped.
type seedEntry struct {
	id        string
	symbol    string
	name      string
	price     float64
	supply    float64
	maxSupply float64
	tags      []string
}

var seedData = map[Category][]seedEntry{
	CategoryPopular: {
		{id: "bitcoin", symbol: "BTC", name: "Bitcoin", price: 106250, supply: 19.75e6, maxSupply: 21e6, tags: []string{"store-of-value", "pow"}},
		{id: "ethereum", symbol: "ETH", name: "Ethereum", price: 3340, supply: 120.4e6, tags: []string{"smart-contracts", "pos"}},
		{id: "ripple", symbol: "XRP", name: "XRP", price: 2.18, supply: 57.5e9, maxSupply: 100e9, tags: []string{"payments"}},
		{id: "binancecoin", symbol: "BNB", name: "BNB", price: 652, supply: 145.9e6, maxSupply: 200e6, tags: []string{"exchange"}},
		{id: "solana", symbol: "SOL", name: "Solana", price: 188.4, supply: 478e6, tags: []string{"smart-contracts", "high-throughput"}},
		{id: "dogecoin", symbol: "DOGE", name: "Dogecoin", price: 0.3182, supply: 147e9, tags: []string{"meme", "payments"}},
		{id: "cardano", symbol: "ADA", name: "Cardano", price: 0.8915, supply: 35.2e9, maxSupply: 45e9, tags: []string{"smart-contracts", "pos"}},
		{id: "tron", symbol: "TRX", name: "TRON", price: 0.2465, supply: 86.2e9, tags: []string{"smart-contracts"}},
		{id: "chainlink", symbol: "LINK", name: "Chainlink", price: 20.15, supply: 626e6, maxSupply: 1e9, tags: []string{"oracle", "infrastructure"}},
		{id: "shiba-inu", symbol: "SHIB", name: "Shiba Inu", price: 0.0000214, supply: 589e12, tags: []string{"meme"}},
		{id: "litecoin", symbol: "LTC", name: "Litecoin", price: 98.6, supply: 75.3e6, maxSupply: 84e6, tags: []string{"payments", "pow"}},
		{id: "polkadot", symbol: "DOT", name: "Polkadot", price: 6.62, supply: 1.52e9, tags: []string{"interoperability"}},
	},
	CategoryLayer1: {
		{id: "avalanche", symbol: "AVAX", name: "Avalanche", price: 35.8, supply: 410e6, maxSupply: 720e6, tags: []string{"smart-contracts", "subnets"}},
		{id: "sui", symbol: "SUI", name: "Sui", price: 4.21, supply: 2.93e9, maxSupply: 10e9, tags: []string{"move", "high-throughput"}},
		{id: "near", symbol: "NEAR", name: "NEAR Protocol", price: 4.87, supply: 1.19e9, tags: []string{"sharding"}},
		{id: "aptos", symbol: "APT", name: "Aptos", price: 8.54, supply: 556e6, tags: []string{"move"}},
		{id: "internet-computer", symbol: "ICP", name: "Internet Computer", price: 9.62, supply: 477e6, tags: []string{"compute"}},
		{id: "cosmos", symbol: "ATOM", name: "Cosmos Hub", price: 6.18, supply: 390e6, tags: []string{"interoperability", "ibc"}},
		{id: "stellar", symbol: "XLM", name: "Stellar", price: 0.3412, supply: 30.1e9, maxSupply: 50e9, tags: []string{"payments"}},
		{id: "hedera", symbol: "HBAR", name: "Hedera", price: 0.2684, supply: 38.2e9, maxSupply: 50e9, tags: []string{"hashgraph"}},
		{id: "ton", symbol: "TON", name: "Toncoin", price: 5.23, supply: 2.55e9, tags: []string{"messaging"}},
		{id: "algorand", symbol: "ALGO", name: "Algorand", price: 0.3281, supply: 8.3e9, maxSupply: 10e9, tags: []string{"pure-pos"}},
		{id: "fantom", symbol: "FTM", name: "Fantom", price: 0.692, supply: 2.8e9, maxSupply: 3.175e9, tags: []string{"dag"}},
		{id: "sei-network", symbol: "SEI", name: "Sei", price: 0.3845, supply: 4.4e9, maxSupply: 10e9, tags: []string{"trading", "high-throughput"}},
		{id: "celestia", symbol: "TIA", name: "Celestia", price: 4.56, supply: 428e6, tags: []string{"modular", "data-availability"}},
		{id: "kaspa", symbol: "KAS", name: "Kaspa", price: 0.1182, supply: 25.3e9, maxSupply: 28.7e9, tags: []string{"pow", "dag"}},
		{id: "tezos", symbol: "XTZ", name: "Tezos", price: 1.24, supply: 1.02e9, tags: []string{"on-chain-governance"}},
		{id: "flow", symbol: "FLOW", name: "Flow", price: 0.685, supply: 1.54e9, tags: []string{"nft"}},
		{id: "mina-protocol", symbol: "MINA", name: "Mina", price: 0.542, supply: 1.17e9, tags: []string{"zk"}},
		{id: "injective", symbol: "INJ", name: "Injective", price: 21.4, supply: 97.7e6, maxSupply: 100e6, tags: []string{"trading", "derivatives"}},
	},
	CategoryDeFi: {
		{id: "uniswap", symbol: "UNI", name: "Uniswap", price: 13.52, supply: 600e6, maxSupply: 1e9, tags: []string{"dex", "amm"}},
		{id: "aave", symbol: "AAVE", name: "Aave", price: 312.6, supply: 15e6, maxSupply: 16e6, tags: []string{"lending"}},
		{id: "maker", symbol: "MKR", name: "Maker", price: 1480, supply: 877e3, maxSupply: 1.005e6, tags: []string{"lending", "stablecoin-issuer"}},
		{id: "lido-dao", symbol: "LDO", name: "Lido DAO", price: 1.72, supply: 896e6, maxSupply: 1e9, tags: []string{"liquid-staking"}},
		{id: "curve-dao-token", symbol: "CRV", name: "Curve DAO", price: 0.864, supply: 1.26e9, maxSupply: 3.03e9, tags: []string{"dex", "amm"}},
		{id: "synthetix", symbol: "SNX", name: "Synthetix", price: 1.95, supply: 328e6, tags: []string{"derivatives"}},
		{id: "compound", symbol: "COMP", name: "Compound", price: 78.3, supply: 9.1e6, maxSupply: 10e6, tags: []string{"lending"}},
		{id: "pancakeswap", symbol: "CAKE", name: "PancakeSwap", price: 2.31, supply: 290e6, maxSupply: 450e6, tags: []string{"dex", "amm"}},
		{id: "thorchain", symbol: "RUNE", name: "THORChain", price: 4.82, supply: 348e6, maxSupply: 500e6, tags: []string{"cross-chain", "dex"}},
		{id: "jupiter", symbol: "JUP", name: "Jupiter", price: 0.962, supply: 1.35e9, maxSupply: 10e9, tags: []string{"dex", "aggregator"}},
		{id: "raydium", symbol: "RAY", name: "Raydium", price: 4.35, supply: 291e6, maxSupply: 555e6, tags: []string{"dex", "amm"}},
		{id: "gmx", symbol: "GMX", name: "GMX", price: 26.8, supply: 9.6e6, maxSupply: 13.25e6, tags: []string{"derivatives", "perps"}},
		{id: "dydx", symbol: "DYDX", name: "dYdX", price: 1.58, supply: 715e6, maxSupply: 1e9, tags: []string{"derivatives", "perps"}},
		{id: "1inch", symbol: "1INCH", name: "1inch", price: 0.412, supply: 1.38e9, maxSupply: 1.5e9, tags: []string{"aggregator"}},
		{id: "balancer", symbol: "BAL", name: "Balancer", price: 2.46, supply: 62e6, maxSupply: 96e6, tags: []string{"dex", "amm"}},
		{id: "sushi", symbol: "SUSHI", name: "SushiSwap", price: 1.12, supply: 255e6, maxSupply: 275e6, tags: []string{"dex", "amm"}},
		{id: "yearn-finance", symbol: "YFI", name: "yearn.finance", price: 8120, supply: 33.5e3, maxSupply: 36.666e3, tags: []string{"yield"}},
		{id: "convex-finance", symbol: "CVX", name: "Convex Finance", price: 3.84, supply: 81e6, maxSupply: 100e6, tags: []string{"yield"}},
		{id: "pendle", symbol: "PENDLE", name: "Pendle", price: 5.67, supply: 162e6, tags: []string{"yield", "fixed-income"}},
		{id: "ethena", symbol: "ENA", name: "Ethena", price: 0.945, supply: 2.9e9, maxSupply: 15e9, tags: []string{"synthetic-dollar"}},
	},
	CategoryStablecoin: {
		{id: "tether", symbol: "USDT", name: "Tether", price: 1.0003, supply: 139e9, tags: []string{"usd-pegged"}},
		{id: "usd-coin", symbol: "USDC", name: "USD Coin", price: 0.9998, supply: 42.8e9, tags: []string{"usd-pegged", "regulated"}},
		{id: "dai", symbol: "DAI", name: "Dai", price: 1.0001, supply: 5.36e9, tags: []string{"usd-pegged", "decentralized"}},
		{id: "first-digital-usd", symbol: "FDUSD", name: "First Digital USD", price: 0.9995, supply: 2.1e9, tags: []string{"usd-pegged"}},
		{id: "usds", symbol: "USDS", name: "USDS", price: 1.0002, supply: 4.9e9, tags: []string{"usd-pegged", "decentralized"}},
		{id: "trueusd", symbol: "TUSD", name: "TrueUSD", price: 0.9984, supply: 494e6, tags: []string{"usd-pegged"}},
		{id: "paypal-usd", symbol: "PYUSD", name: "PayPal USD", price: 1.0001, supply: 512e6, tags: []string{"usd-pegged", "regulated"}},
		{id: "frax", symbol: "FRAX", name: "Frax", price: 0.9972, supply: 647e6, tags: []string{"usd-pegged", "fractional"}},
	},
	CategoryNewListing: {
		{id: "hyperliquid", symbol: "HYPE", name: "Hyperliquid", price: 24.6, supply: 334e6, maxSupply: 1e9, tags: []string{"perps", "trading"}},
		{id: "pudgy-penguins", symbol: "PENGU", name: "Pudgy Penguins", price: 0.0284, supply: 62.9e9, maxSupply: 88.9e9, tags: []string{"meme", "nft"}},
		{id: "virtuals-protocol", symbol: "VIRTUAL", name: "Virtuals Protocol", price: 3.12, supply: 642e6, maxSupply: 1e9, tags: []string{"ai", "agents"}},
		{id: "fartcoin", symbol: "FARTCOIN", name: "Fartcoin", price: 1.08, supply: 1e9, maxSupply: 1e9, tags: []string{"meme"}},
		{id: "ai16z", symbol: "AI16Z", name: "ai16z", price: 1.64, supply: 1.1e9, maxSupply: 1.1e9, tags: []string{"ai", "agents"}},
		{id: "movement", symbol: "MOVE", name: "Movement", price: 0.812, supply: 2.25e9, maxSupply: 10e9, tags: []string{"move", "layer2"}},
		{id: "usual", symbol: "USUAL", name: "Usual", price: 0.792, supply: 478e6, maxSupply: 4e9, tags: []string{"stablecoin-issuer"}},
		{id: "peanut-the-squirrel", symbol: "PNUT", name: "Peanut the Squirrel", price: 0.512, supply: 999e6, maxSupply: 999e6, tags: []string{"meme"}},
		{id: "magic-eden", symbol: "ME", name: "Magic Eden", price: 2.85, supply: 128e6, maxSupply: 1e9, tags: []string{"nft", "marketplace"}},
		{id: "grass", symbol: "GRASS", name: "Grass", price: 2.43, supply: 244e6, maxSupply: 1e9, tags: []string{"ai", "data"}},
		{id: "eigenlayer", symbol: "EIGEN", name: "EigenLayer", price: 3.67, supply: 210e6, tags: []string{"restaking"}},
		{id: "ondo-finance", symbol: "ONDO", name: "Ondo", price: 1.46, supply: 1.56e9, maxSupply: 10e9, tags: []string{"rwa"}},
		{id: "zircuit", symbol: "ZRC", name: "Zircuit", price: 0.048, supply: 2.3e9, maxSupply: 21e9, tags: []string{"layer2", "zk"}},
		{id: "moca-network", symbol: "MOCA", name: "Moca Network", price: 0.092, supply: 2.54e9, maxSupply: 8.89e9, tags: []string{"identity"}},
	},
}
