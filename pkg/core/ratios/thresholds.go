package ratios

// Decision tables for every tiered ratio. Bands are sorted ascending
// and closed with an +Inf band. Rates and margins are decimals;
// turnover and coverage are plain multiples; day counts are days.

var grossMarginBands = []Band{
	{0.05, status("Poor", "저조", "较差", "red",
		"Low profit structure due to poor cost control.",
		"원가 통제 미흡으로 인한 저수익 구조입니다.",
		"由于成本管理不良导致低收益结构。")},
	{0.10, status("Average", "보통", "一般", "yellow",
		"Industry average level of gross profit margin.",
		"업계 평균 수준의 매출총이익률입니다.",
		"行业平均水平的毛利率。")},
	{inf, status("Good", "우수", "良好", "green",
		"Good pricing power and cost efficiency.",
		"가격 결정력과 원가 효율이 양호합니다.",
		"良好的定价能力和成本效率。")},
}

var operatingMarginBands = []Band{
	{0.05, status("Weak", "취약", "薄弱", "red",
		"Operational efficiency is weak.",
		"운영 효율성이 취약합니다.",
		"运营效率薄弱。")},
	{0.15, status("Average", "보통", "一般", "yellow",
		"Shows operating performance within industry average.",
		"업종 평균 내 운영성과를 보여줍니다.",
		"显示在行业平均水平内的运营表现。")},
	{inf, status("Excellent", "우수", "优秀", "green",
		"Has a high-value business structure.",
		"고부가 사업구조를 갖추고 있습니다.",
		"具有高附加值的业务结构。")},
}

var netMarginBands = []Band{
	{0.05, status("Poor", "저조", "较差", "red",
		"Low profit structure due to poor total cost management.",
		"총비용 관리 미흡으로 인한 저수익 구조입니다.",
		"由于总成本管理不良导致低收益结构。")},
	{0.10, status("Average", "보통", "一般", "yellow",
		"Shows net profit margin at industry average.",
		"업종 평균 수준의 순이익률을 보이고 있습니다.",
		"显示行业平均水平的净利润率。")},
	{inf, status("Excellent", "우수", "优秀", "green",
		"Has a high-profit business model.",
		"고수익 사업모델을 갖추고 있습니다.",
		"具有高盈利的业务模式。")},
}

var roaBands = []Band{
	{0.05, status("Inefficient", "비효율", "低效率", "red",
		"Asset utilization is inefficient.",
		"자산 활용이 비효율적입니다.",
		"资产利用效率低。")},
	{0.10, status("Average", "보통", "平均", "yellow",
		"Using assets efficiently.",
		"자산을 효율적으로 사용하고 있습니다.",
		"有效利用资产。")},
	{0.20, status("Excellent", "우수", "优秀", "green",
		"Shows outstanding asset profitability.",
		"뛰어난 자산 수익성을 보여줍니다.",
		"显示出色的资产盈利能力。")},
	{inf, status("Outstanding", "탁월", "卓越", "blue",
		"Generating excess returns on assets.",
		"자산 대비 초과 수익을 창출하고 있습니다.",
		"产生超额的资产回报。")},
}

var roeBands = []Band{
	{0.10, status("Weak", "취약", "薄弱", "red",
		"Capital operation is weak.",
		"자본 운용이 취약합니다.",
		"资本运作薄弱。")},
	{0.15, status("Average", "보통", "平均", "yellow",
		"Industry average level of return on equity.",
		"업계 평균 수준의 자기자본수익률입니다.",
		"行业平均水平的股本回报率。")},
	{0.20, status("Excellent", "우수", "优秀", "green",
		"Generating solid capital returns.",
		"견고한 자본 수익을 창출하고 있습니다.",
		"正在创造坚实的资本回报。")},
	{inf, status("Outstanding", "탁월", "卓越", "blue",
		"Excellent leverage utilization.",
		"레버리지 활용이 우수합니다.",
		"杰出的杠杆利用。")},
}

var roicBands = []Band{
	{0.05, status("Poor", "저조", "较差", "red",
		"Returns on invested capital trail the cost of funding it.",
		"투하자본 수익이 자본조달 비용에 미치지 못합니다.",
		"投入资本回报低于融资成本。")},
	{0.08, status("Caution", "주의", "注意", "orange",
		"Barely covering the cost of capital.",
		"자본비용을 간신히 충당하는 수준입니다.",
		"勉强覆盖资本成本。")},
	{0.12, status("Average", "보통", "一般", "yellow",
		"Invested capital earns a market-level return.",
		"투하자본이 시장 수준의 수익을 내고 있습니다.",
		"投入资本获得市场水平的回报。")},
	{0.20, status("Excellent", "우수", "优秀", "green",
		"Capital allocation is clearly productive.",
		"자본 배분이 뚜렷하게 생산적입니다.",
		"资本配置明显具有生产力。")},
	{inf, status("Outstanding", "탁월", "卓越", "blue",
		"Compounding capital at an exceptional rate.",
		"탁월한 속도로 자본을 증식시키고 있습니다.",
		"以卓越的速度实现资本增值。")},
}

var debtToEquityBands = []Band{
	{1.0, status("Conservative", "보수적", "保守", "green",
		"Low reliance on borrowed capital.",
		"차입 자본 의존도가 낮습니다.",
		"对借入资本的依赖度低。")},
	{2.0, status("Moderate", "보통", "适中", "yellow",
		"Leverage within a manageable range.",
		"관리 가능한 범위의 레버리지입니다.",
		"杠杆处于可控范围内。")},
	{inf, status("Excessive", "과다", "过度", "red",
		"Debt load is heavy relative to equity.",
		"자기자본 대비 부채 부담이 큽니다.",
		"相对于股本债务负担沉重。")},
}

var debtRatioBands = []Band{
	{0.4, status("Conservative", "보수적", "保守", "green",
		"Assets are financed mostly with equity.",
		"자산 대부분이 자기자본으로 조달되었습니다.",
		"资产主要由股本融资。")},
	{0.6, status("Moderate", "보통", "适中", "yellow",
		"Balanced mix of debt and equity funding.",
		"부채와 자본의 균형 잡힌 조달 구조입니다.",
		"债务与股本融资比例均衡。")},
	{inf, status("Excessive", "과다", "过度", "red",
		"Debt finances the majority of assets.",
		"부채가 자산의 대부분을 조달하고 있습니다.",
		"债务为大部分资产提供资金。")},
}

var equityRatioBands = []Band{
	{0.2, status("Risky", "위험", "危险", "red",
		"Thin equity cushion against losses.",
		"손실을 흡수할 자본 여력이 얇습니다.",
		"抵御损失的股本缓冲薄弱。")},
	{0.4, status("Caution", "주의", "注意", "orange",
		"Equity base below the comfortable range.",
		"자기자본 비중이 안정권에 미달합니다.",
		"股本基础低于安全范围。")},
	{0.6, status("Good", "양호", "良好", "green",
		"Healthy equity backing for the balance sheet.",
		"재무상태표를 받치는 자본이 건전합니다.",
		"资产负债表有健康的股本支撑。")},
	{inf, status("Safe", "안전", "安全", "blue",
		"Very strong capital structure.",
		"매우 견고한 자본 구조입니다.",
		"非常稳固的资本结构。")},
}

var interestCoverageBands = []Band{
	{1.5, status("Danger", "위험", "危险", "red",
		"Operating profit barely covers interest.",
		"영업이익이 이자를 간신히 감당합니다.",
		"营业利润勉强覆盖利息。")},
	{3.0, status("Caution", "주의", "注意", "orange",
		"Limited headroom over interest obligations.",
		"이자 부담 대비 여유가 제한적입니다.",
		"相对利息负担余地有限。")},
	{inf, status("Safe", "안전", "安全", "green",
		"Comfortable interest coverage.",
		"이자보상 여력이 충분합니다.",
		"利息保障充足。")},
}

var interestFreeStatus = status("Safe", "안전", "安全", "green",
	"No meaningful interest burden.",
	"유의미한 이자 부담이 없습니다.",
	"没有实质性的利息负担。")

var revenueGrowthBands = []Band{
	{0.05, status("Low Growth", "저성장", "低增长", "red",
		"Top line is nearly flat.",
		"매출이 거의 정체 상태입니다.",
		"营收几乎持平。")},
	{0.15, status("Moderate", "보통", "适中", "yellow",
		"Steady, market-level revenue growth.",
		"시장 수준의 꾸준한 매출 성장입니다.",
		"稳定的市场水平营收增长。")},
	{0.30, status("High Growth", "고성장", "高增长", "green",
		"Revenue expanding well above the market.",
		"시장을 크게 웃도는 매출 성장세입니다.",
		"营收扩张远超市场。")},
	{inf, status("Exceptional Growth", "초고성장", "超高增长", "blue",
		"Hypergrowth phase in the top line.",
		"매출이 초고속 성장 국면에 있습니다.",
		"营收处于超高速增长阶段。")},
}

var incomeGrowthBands = []Band{
	{0.0, status("Negative", "역성장", "负增长", "red",
		"Profit is shrinking year over year.",
		"이익이 전년 대비 감소하고 있습니다.",
		"利润同比萎缩。")},
	{0.05, status("Slow", "둔화", "缓慢", "orange",
		"Profit growth has nearly stalled.",
		"이익 성장이 거의 멈춘 상태입니다.",
		"利润增长几乎停滞。")},
	{0.15, status("Average", "보통", "一般", "yellow",
		"Profit growing in line with peers.",
		"동종업계와 비슷한 이익 성장률입니다.",
		"利润增长与同行持平。")},
	{0.25, status("Strong", "견조", "强劲", "green",
		"Profit compounding at a strong clip.",
		"이익이 견조하게 증가하고 있습니다.",
		"利润以强劲速度增长。")},
	{inf, status("Exceptional", "탁월", "卓越", "blue",
		"Outsized profit expansion.",
		"이익이 비약적으로 확대되고 있습니다.",
		"利润大幅扩张。")},
}

var epsGrowthBands = []Band{
	{0.05, status("Low Growth", "저성장", "低增长", "red",
		"Per-share earnings are stagnating.",
		"주당순이익이 정체되어 있습니다.",
		"每股收益停滞。")},
	{0.20, status("Moderate", "보통", "适中", "yellow",
		"Moderate per-share earnings growth.",
		"완만한 주당순이익 성장입니다.",
		"每股收益温和增长。")},
	{inf, status("High Growth", "고성장", "高增长", "green",
		"Per-share earnings growing rapidly.",
		"주당순이익이 빠르게 성장하고 있습니다.",
		"每股收益快速增长。")},
}

var currentRatioBands = []Band{
	{1.0, status("Risky", "위험", "危险", "red",
		"Current liabilities exceed current assets.",
		"유동부채가 유동자산을 초과합니다.",
		"流动负债超过流动资产。")},
	{1.5, status("Weak", "취약", "薄弱", "orange",
		"Thin short-term liquidity buffer.",
		"단기 유동성 여력이 얇습니다.",
		"短期流动性缓冲薄弱。")},
	{2.0, status("Good", "양호", "良好", "green",
		"Adequate short-term payment capacity.",
		"단기 지급 능력이 적정합니다.",
		"短期偿付能力充足。")},
	{inf, status("Sufficient", "충분", "充裕", "blue",
		"Ample liquidity against current obligations.",
		"유동부채 대비 유동성이 풍부합니다.",
		"相对流动负债流动性充裕。")},
}

var quickRatioBands = []Band{
	{1.0, status("Warning", "경고", "警告", "orange",
		"Quick assets fall short of current liabilities.",
		"당좌자산이 유동부채에 미달합니다.",
		"速动资产低于流动负债。")},
	{inf, status("Good", "양호", "良好", "green",
		"Quick assets cover current liabilities.",
		"당좌자산이 유동부채를 충당합니다.",
		"速动资产覆盖流动负债。")},
}

var cashRatioBands = []Band{
	{0.5, status("Risky", "위험", "危险", "red",
		"Cash covers under half of current liabilities.",
		"현금이 유동부채의 절반도 충당하지 못합니다.",
		"现金覆盖不足流动负债的一半。")},
	{1.0, status("Average", "보통", "一般", "yellow",
		"Partial cash coverage of current liabilities.",
		"유동부채를 현금으로 일부 충당할 수 있습니다.",
		"现金部分覆盖流动负债。")},
	{inf, status("Good", "양호", "良好", "green",
		"Cash alone covers current liabilities.",
		"현금만으로 유동부채를 충당할 수 있습니다.",
		"仅现金即可覆盖流动负债。")},
}

var assetTurnoverBands = []Band{
	{0.5, status("Inefficient", "비효율", "低效率", "red",
		"Assets generate little revenue.",
		"자산이 창출하는 매출이 적습니다.",
		"资产产生的收入很少。")},
	{1.0, status("Average", "보통", "一般", "yellow",
		"Typical asset productivity.",
		"일반적인 수준의 자산 생산성입니다.",
		"典型的资产生产率。")},
	{inf, status("Excellent", "우수", "优秀", "green",
		"Assets are worked hard for revenue.",
		"자산을 매출 창출에 효율적으로 활용합니다.",
		"资产被高效用于创收。")},
}

var inventoryTurnoverBands = []Band{
	{4, status("Risky", "위험", "危险", "red",
		"Inventory moves slowly; obsolescence risk.",
		"재고 회전이 느려 진부화 위험이 있습니다.",
		"库存周转缓慢，存在过时风险。")},
	{8, status("Average", "보통", "一般", "yellow",
		"Inventory turns at an ordinary pace.",
		"재고가 보통 속도로 회전합니다.",
		"库存以一般速度周转。")},
	{inf, status("Excellent", "우수", "优秀", "green",
		"Fast, lean inventory cycle.",
		"빠르고 효율적인 재고 회전입니다.",
		"快速精益的库存周期。")},
}

var receivablesTurnoverBands = []Band{
	{5, status("Risky", "위험", "危险", "red",
		"Collections lag sales significantly.",
		"매출 대비 대금 회수가 크게 지연됩니다.",
		"回款明显滞后于销售。")},
	{10, status("Average", "보통", "一般", "yellow",
		"Collection pace is ordinary.",
		"대금 회수 속도가 보통 수준입니다.",
		"回款速度一般。")},
	{inf, status("Excellent", "우수", "优秀", "green",
		"Receivables are collected quickly.",
		"매출채권을 신속하게 회수합니다.",
		"应收账款回收迅速。")},
}

// Day-count metrics run the other way: lower is better.
var daysInventoryBands = []Band{
	{45, status("Excellent", "우수", "优秀", "green",
		"Inventory clears in well under two months.",
		"재고가 두 달이 되기 전에 소진됩니다.",
		"库存在远少于两个月内售罄。")},
	{60, status("Average", "보통", "一般", "yellow",
		"Inventory holding period is typical.",
		"재고 보유 기간이 일반적입니다.",
		"库存持有期属于正常水平。")},
	{90, status("Caution", "주의", "注意", "orange",
		"Inventory sits longer than it should.",
		"재고 체류 기간이 길어지고 있습니다.",
		"库存滞留时间偏长。")},
	{inf, status("Inefficient", "비효율", "低效率", "red",
		"Capital is tied up in slow inventory.",
		"느린 재고에 자본이 묶여 있습니다.",
		"资金被缓慢的库存占用。")},
}

var daysSalesOutstandingBands = []Band{
	{30, status("Excellent", "우수", "优秀", "green",
		"Customers pay within a month.",
		"고객 대금이 한 달 안에 회수됩니다.",
		"客户在一个月内付款。")},
	{45, status("Average", "보통", "一般", "yellow",
		"Standard collection terms.",
		"일반적인 회수 조건입니다.",
		"标准回款条件。")},
	{60, status("Caution", "주의", "注意", "orange",
		"Collections are stretching out.",
		"대금 회수 기간이 늘어나고 있습니다.",
		"回款周期在拉长。")},
	{inf, status("Inefficient", "비효율", "低效率", "red",
		"Receivables age past two months.",
		"매출채권이 두 달 이상 묵고 있습니다.",
		"应收账款账龄超过两个月。")},
}

var operatingCycleBands = []Band{
	{60, status("Excellent", "우수", "优秀", "green",
		"Cash converts in under two months.",
		"두 달 이내에 현금화됩니다.",
		"现金在两个月内转换。")},
	{90, status("Average", "보통", "一般", "yellow",
		"Working capital cycle is typical.",
		"운전자본 회전이 일반적인 수준입니다.",
		"营运资金周期属于正常水平。")},
	{120, status("Caution", "주의", "注意", "orange",
		"Cash is tied up a full quarter.",
		"현금이 한 분기 내내 묶여 있습니다.",
		"资金被占用整整一个季度。")},
	{inf, status("Inefficient", "비효율", "低效率", "red",
		"Very slow conversion to cash.",
		"현금 전환이 매우 느립니다.",
		"现金转换非常缓慢。")},
}

var ocfToRevenueBands = []Band{
	{0.05, status("Poor", "저조", "较差", "red",
		"Revenue converts poorly into cash.",
		"매출의 현금 전환율이 낮습니다.",
		"营收转化为现金的比例低。")},
	{0.10, status("Below Average", "평균 이하", "低于平均", "orange",
		"Cash conversion trails the norm.",
		"현금 전환이 평균에 미달합니다.",
		"现金转化低于平均水平。")},
	{0.15, status("Average", "보통", "一般", "yellow",
		"Normal operating cash generation.",
		"보통 수준의 영업현금 창출력입니다.",
		"正常的经营现金产生能力。")},
	{0.25, status("Good", "양호", "良好", "green",
		"Strong cash backing behind revenue.",
		"매출을 뒷받침하는 현금창출이 탄탄합니다.",
		"营收背后有强劲的现金支撑。")},
	{inf, status("Excellent", "우수", "优秀", "blue",
		"Exceptional cash conversion of sales.",
		"매출의 현금 전환이 탁월합니다.",
		"销售的现金转化能力卓越。")},
}

var fcfToOCFBands = []Band{
	{0.3, status("Low", "낮음", "低", "red",
		"Capex consumes most operating cash.",
		"설비투자가 영업현금 대부분을 소모합니다.",
		"资本支出消耗了大部分经营现金。")},
	{0.6, status("Moderate", "보통", "适中", "yellow",
		"A fair share of operating cash stays free.",
		"영업현금의 상당 부분이 잉여로 남습니다.",
		"相当一部分经营现金留作自由现金。")},
	{inf, status("High", "높음", "高", "green",
		"Most operating cash converts to free cash.",
		"영업현금 대부분이 잉여현금으로 전환됩니다.",
		"大部分经营现金转化为自由现金。")},
}

var capexToSalesBands = []Band{
	{0.05, status("Conservative", "보수적", "保守", "green",
		"Light capital intensity.",
		"자본 집약도가 낮습니다.",
		"资本密集度低。")},
	{0.10, status("Average", "보통", "一般", "yellow",
		"Typical reinvestment burden.",
		"일반적인 재투자 부담입니다.",
		"典型的再投资负担。")},
	{inf, status("Aggressive", "공격적", "激进", "red",
		"Heavy reinvestment relative to sales.",
		"매출 대비 재투자 부담이 큽니다.",
		"相对销售额的再投资负担沉重。")},
}

var capexToDepreciationBands = []Band{
	{1.0, status("Maintenance", "유지", "维持", "yellow",
		"Spending below depreciation; asset base shrinking.",
		"감가상각보다 적게 투자해 자산이 축소되고 있습니다.",
		"投资低于折旧，资产基础在萎缩。")},
	{1.5, status("Replacement", "대체", "更新", "green",
		"Replacing assets as they wear out.",
		"마모되는 자산을 대체하는 수준의 투자입니다.",
		"投资水平足以更新老化资产。")},
	{2.0, status("Balanced", "균형", "均衡", "blue",
		"Replacement plus measured expansion.",
		"대체 투자에 더해 완만히 확장하고 있습니다.",
		"在更新之外进行适度扩张。")},
	{inf, status("Growth", "성장", "增长", "orange",
		"Aggressive capacity expansion.",
		"공격적으로 설비를 확장하고 있습니다.",
		"激进的产能扩张。")},
}

var cashFlowToCapexBands = []Band{
	{1.0, status("External Funding Dependent", "외부자금 의존", "依赖外部融资", "red",
		"Operating cash cannot fund capex alone.",
		"영업현금만으로 설비투자를 감당하지 못합니다.",
		"仅靠经营现金无法支撑资本支出。")},
	{1.5, status("Average", "보통", "一般", "yellow",
		"Capex is covered with modest headroom.",
		"설비투자를 약간의 여유를 두고 충당합니다.",
		"资本支出覆盖略有余量。")},
	{inf, status("Sufficient", "충분", "充足", "green",
		"Internal cash comfortably funds investment.",
		"내부 현금으로 투자를 넉넉히 충당합니다.",
		"内部现金充分支撑投资。")},
}

var fcfToSalesBands = []Band{
	{0.0, status("Cash Deficit", "현금부족", "现金不足", "red",
		"Operations burn more cash than they generate.",
		"창출하는 현금보다 소모가 많습니다.",
		"消耗的现金多于产生的现金。")},
	{0.10, status("Average", "보통", "一般", "yellow",
		"Ordinary free cash yield on sales.",
		"매출 대비 보통 수준의 잉여현금입니다.",
		"相对销售额的一般自由现金收益。")},
	{inf, status("Excellent", "우수", "优秀", "green",
		"Sales throw off substantial free cash.",
		"매출이 상당한 잉여현금을 창출합니다.",
		"销售产生可观的自由现金。")},
}

var peBands = []Band{
	{14, status("Undervalued", "저평가", "低估", "blue",
		"Priced below typical earnings multiples.",
		"통상적인 이익 배수보다 낮게 거래됩니다.",
		"定价低于典型的收益倍数。")},
	{25, status("Fair", "적정", "合理", "green",
		"Priced within the normal earnings range.",
		"정상적인 이익 배수 범위의 가격입니다.",
		"定价处于正常收益倍数区间。")},
	{inf, status("Overvalued", "고평가", "高估", "red",
		"Rich multiple on current earnings.",
		"현재 이익 대비 높은 배수입니다.",
		"相对当前收益估值偏高。")},
}

var pbBands = []Band{
	{1.0, status("Undervalued", "저평가", "低估", "blue",
		"Trading below book value.",
		"장부가치보다 낮게 거래됩니다.",
		"交易价格低于账面价值。")},
	{3.0, status("Fair", "적정", "合理", "green",
		"Reasonable premium over book value.",
		"장부가치 대비 합리적인 프리미엄입니다.",
		"相对账面价值的溢价合理。")},
	{inf, status("Overvalued", "고평가", "高估", "red",
		"Steep premium over book value.",
		"장부가치 대비 프리미엄이 과도합니다.",
		"相对账面价值溢价过高。")},
}

var psBands = []Band{
	{1.0, status("Undervalued", "저평가", "低估", "blue",
		"Priced under one year of revenue.",
		"연매출보다 낮은 가격에 거래됩니다.",
		"定价低于一年的营收。")},
	{3.0, status("Fair", "적정", "合理", "green",
		"Revenue multiple within the normal band.",
		"정상 범위의 매출 배수입니다.",
		"营收倍数处于正常区间。")},
	{inf, status("Overvalued", "고평가", "高估", "red",
		"Expensive relative to revenue.",
		"매출 대비 고평가 상태입니다.",
		"相对营收估值昂贵。")},
}

var evEbitdaBands = []Band{
	{8, status("Undervalued", "저평가", "低估", "blue",
		"Enterprise value is cheap against EBITDA.",
		"EBITDA 대비 기업가치가 저렴합니다.",
		"相对EBITDA企业价值便宜。")},
	{15, status("Fair", "적정", "合理", "green",
		"EBITDA multiple in the normal range.",
		"정상 범위의 EBITDA 배수입니다.",
		"EBITDA倍数处于正常区间。")},
	{inf, status("Overvalued", "고평가", "高估", "red",
		"Rich enterprise multiple.",
		"기업가치 배수가 높습니다.",
		"企业价值倍数偏高。")},
}

var waccBands = []Band{
	{0.06, status("Very Low", "매우 낮음", "很低", "blue",
		"Capital is exceptionally cheap for this firm.",
		"자본조달 비용이 매우 낮은 기업입니다.",
		"该公司的资本成本非常低。")},
	{0.08, status("Low", "낮음", "低", "green",
		"Below-average cost of capital.",
		"평균보다 낮은 자본비용입니다.",
		"低于平均的资本成本。")},
	{0.10, status("Moderate", "보통", "适中", "yellow",
		"Market-typical funding cost.",
		"시장 평균 수준의 조달 비용입니다.",
		"市场典型的融资成本。")},
	{0.12, status("High", "높음", "高", "orange",
		"Investors demand an elevated return.",
		"투자자들이 높은 수익률을 요구합니다.",
		"投资者要求较高的回报。")},
	{inf, status("Very High", "매우 높음", "很高", "red",
		"Funding this business is expensive.",
		"자본조달 비용이 매우 높습니다.",
		"该企业的融资成本昂贵。")},
}

// ValueSpreadBands classifies ROIC minus WACC.
var ValueSpreadBands = []Band{
	{-0.05, status("Value Destruction", "가치 파괴", "价值毁灭", "red",
		"Returns fall far short of the cost of capital.",
		"수익이 자본비용에 크게 미달합니다.",
		"回报远低于资本成本。")},
	{-0.02, status("Slight Value Destruction", "소폭 가치 파괴", "轻微价值毁灭", "orange",
		"Returns run slightly below the cost of capital.",
		"수익이 자본비용을 소폭 밑돕니다.",
		"回报略低于资本成本。")},
	{0.02, status("Neutral", "중립", "中性", "yellow",
		"Returns roughly match the cost of capital.",
		"수익이 자본비용과 비슷한 수준입니다.",
		"回报与资本成本大致相当。")},
	{0.05, status("Moderate Value Creation", "적정 가치 창출", "适度价值创造", "green",
		"Returns clear the cost of capital with room to spare.",
		"수익이 자본비용을 여유 있게 상회합니다.",
		"回报明显超过资本成本。")},
	{inf, status("Strong Value Creation", "강한 가치 창출", "强劲价值创造", "blue",
		"Wide spread over the cost of capital.",
		"자본비용을 크게 웃도는 스프레드입니다.",
		"相对资本成本有宽阔的利差。")},
}
