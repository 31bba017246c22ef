package taxonomy

// Built-in us-gaap mappings. Presentation linkbase order takes precedence
// when available; these tables supply canonical identities and the
// fallback order for filings without a usable linkbase.

var incomeItems = []LineItem{
	{Key: "revenue", Label: "Revenue", Concepts: []string{
		"RevenueFromContractWithCustomerExcludingAssessedTax",
		"RevenueFromContractWithCustomerIncludingAssessedTax",
		"Revenues", "SalesRevenueNet", "SalesRevenueGoodsNet", "SalesRevenueServicesNet",
	}},
	{Key: "cost_of_revenue", Label: "Cost of Revenue", Concepts: []string{
		"CostOfRevenue", "CostOfGoodsAndServicesSold", "CostOfGoodsSold", "CostOfServices",
	}},
	{Key: "gross_profit", Label: "Gross Profit", Concepts: []string{"GrossProfit"}, Total: true},
	{Key: "research_development", Label: "Research and Development", Concepts: []string{
		"ResearchAndDevelopmentExpense",
	}},
	{Key: "sga", Label: "Selling, General and Administrative", Concepts: []string{
		"SellingGeneralAndAdministrativeExpense", "GeneralAndAdministrativeExpense", "SellingAndMarketingExpense",
	}},
	{Key: "operating_expenses", Label: "Total Operating Expenses", Concepts: []string{
		"OperatingExpenses", "CostsAndExpenses",
	}, Total: true},
	{Key: "operating_income", Label: "Operating Income", Concepts: []string{
		"OperatingIncomeLoss",
	}, Total: true},
	{Key: "interest_expense", Label: "Interest Expense", Concepts: []string{
		"InterestExpense", "InterestIncomeExpenseNet",
	}},
	{Key: "other_income", Label: "Other Income (Expense), Net", Concepts: []string{
		"NonoperatingIncomeExpense", "OtherNonoperatingIncomeExpense",
	}},
	{Key: "pretax_income", Label: "Income Before Taxes", Concepts: []string{
		"IncomeLossFromContinuingOperationsBeforeIncomeTaxesExtraordinaryItemsNoncontrollingInterest",
		"IncomeLossFromContinuingOperationsBeforeIncomeTaxesMinorityInterestAndIncomeLossFromEquityMethodInvestments",
	}, Total: true},
	{Key: "income_tax", Label: "Income Tax Expense", Concepts: []string{
		"IncomeTaxExpenseBenefit",
	}},
	{Key: "net_income", Label: "Net Income", Concepts: []string{
		"NetIncomeLoss", "ProfitLoss",
	}, Total: true},
	{Key: "eps_basic", Label: "Earnings Per Share, Basic", Concepts: []string{
		"EarningsPerShareBasic",
	}},
	{Key: "eps_diluted", Label: "Earnings Per Share, Diluted", Concepts: []string{
		"EarningsPerShareDiluted",
	}},
}

var balanceItems = []LineItem{
	{Key: "cash", Label: "Cash and Cash Equivalents", Concepts: []string{
		"CashAndCashEquivalentsAtCarryingValue", "CashCashEquivalentsRestrictedCashAndRestrictedCashEquivalents", "Cash",
	}},
	{Key: "short_term_investments", Label: "Short-Term Investments", Concepts: []string{
		"ShortTermInvestments", "MarketableSecuritiesCurrent", "AvailableForSaleSecuritiesCurrent",
	}},
	{Key: "accounts_receivable", Label: "Accounts Receivable, Net", Concepts: []string{
		"AccountsReceivableNetCurrent", "ReceivablesNetCurrent",
	}},
	{Key: "inventory", Label: "Inventories", Concepts: []string{
		"InventoryNet", "InventoryFinishedGoodsNetOfReserves",
	}},
	{Key: "total_current_assets", Label: "Total Current Assets", Concepts: []string{
		"AssetsCurrent",
	}, Total: true},
	{Key: "ppe_net", Label: "Property, Plant and Equipment, Net", Concepts: []string{
		"PropertyPlantAndEquipmentNet",
	}},
	{Key: "goodwill", Label: "Goodwill", Concepts: []string{"Goodwill"}},
	{Key: "intangibles", Label: "Intangible Assets, Net", Concepts: []string{
		"FiniteLivedIntangibleAssetsNet", "IntangibleAssetsNetExcludingGoodwill",
	}},
	{Key: "total_assets", Label: "Total Assets", Concepts: []string{"Assets"}, Total: true},
	{Key: "accounts_payable", Label: "Accounts Payable", Concepts: []string{
		"AccountsPayableCurrent", "AccountsPayableAndAccruedLiabilitiesCurrent",
	}},
	{Key: "accrued_liabilities", Label: "Accrued Liabilities", Concepts: []string{
		"AccruedLiabilitiesCurrent",
	}},
	{Key: "short_term_debt", Label: "Short-Term Debt", Concepts: []string{
		"LongTermDebtCurrent", "DebtCurrent", "ShortTermBorrowings",
	}},
	{Key: "total_current_liabilities", Label: "Total Current Liabilities", Concepts: []string{
		"LiabilitiesCurrent",
	}, Total: true},
	{Key: "long_term_debt", Label: "Long-Term Debt", Concepts: []string{
		"LongTermDebtNoncurrent", "LongTermDebt",
	}},
	{Key: "total_liabilities", Label: "Total Liabilities", Concepts: []string{
		"Liabilities",
	}, Total: true},
	{Key: "common_stock", Label: "Common Stock", Concepts: []string{
		"CommonStockValue", "CommonStocksIncludingAdditionalPaidInCapital",
	}},
	{Key: "retained_earnings", Label: "Retained Earnings", Concepts: []string{
		"RetainedEarningsAccumulatedDeficit",
	}},
	{Key: "aoci", Label: "Accumulated Other Comprehensive Income (Loss)", Concepts: []string{
		"AccumulatedOtherComprehensiveIncomeLossNetOfTax",
	}},
	{Key: "total_equity", Label: "Total Stockholders' Equity", Concepts: []string{
		"StockholdersEquity", "StockholdersEquityIncludingPortionAttributableToNoncontrollingInterest",
	}, Total: true},
	{Key: "total_liabilities_equity", Label: "Total Liabilities and Stockholders' Equity", Concepts: []string{
		"LiabilitiesAndStockholdersEquity",
	}, Total: true},
}

var cashflowItems = []LineItem{
	{Key: "net_income", Label: "Net Income", Concepts: []string{
		"NetIncomeLoss", "ProfitLoss",
	}},
	{Key: "depreciation_amortization", Label: "Depreciation and Amortization", Concepts: []string{
		"DepreciationDepletionAndAmortization", "DepreciationAmortizationAndAccretionNet", "Depreciation",
	}},
	{Key: "stock_compensation", Label: "Share-Based Compensation", Concepts: []string{
		"ShareBasedCompensation",
	}},
	{Key: "working_capital_changes", Label: "Changes in Working Capital", Concepts: []string{
		"IncreaseDecreaseInOperatingCapital",
	}},
	{Key: "cash_from_operations", Label: "Net Cash from Operating Activities", Concepts: []string{
		"NetCashProvidedByUsedInOperatingActivities",
		"NetCashProvidedByUsedInOperatingActivitiesContinuingOperations",
	}, Total: true},
	{Key: "capex", Label: "Capital Expenditures", Concepts: []string{
		"PaymentsToAcquirePropertyPlantAndEquipment", "PaymentsToAcquireProductiveAssets",
	}},
	{Key: "acquisitions", Label: "Acquisitions, Net of Cash", Concepts: []string{
		"PaymentsToAcquireBusinessesNetOfCashAcquired",
	}},
	{Key: "cash_from_investing", Label: "Net Cash from Investing Activities", Concepts: []string{
		"NetCashProvidedByUsedInInvestingActivities",
		"NetCashProvidedByUsedInInvestingActivitiesContinuingOperations",
	}, Total: true},
	{Key: "dividends_paid", Label: "Dividends Paid", Concepts: []string{
		"PaymentsOfDividends", "PaymentsOfDividendsCommonStock",
	}},
	{Key: "buybacks", Label: "Repurchases of Common Stock", Concepts: []string{
		"PaymentsForRepurchaseOfCommonStock",
	}},
	{Key: "cash_from_financing", Label: "Net Cash from Financing Activities", Concepts: []string{
		"NetCashProvidedByUsedInFinancingActivities",
		"NetCashProvidedByUsedInFinancingActivitiesContinuingOperations",
	}, Total: true},
	{Key: "net_change_in_cash", Label: "Net Change in Cash", Concepts: []string{
		"CashCashEquivalentsRestrictedCashAndRestrictedCashEquivalentsPeriodIncreaseDecreaseIncludingExchangeRateEffect",
		"CashAndCashEquivalentsPeriodIncreaseDecrease",
	}, Total: true},
	{Key: "ending_cash", Label: "Cash at End of Period", Concepts: []string{
		"CashCashEquivalentsRestrictedCashAndRestrictedCashEquivalents",
		"CashAndCashEquivalentsAtCarryingValue",
	}, Total: true},
}

var equityItems = []LineItem{
	{Key: "common_stock", Label: "Common Stock", Concepts: []string{
		"CommonStockValue", "CommonStocksIncludingAdditionalPaidInCapital",
	}},
	{Key: "apic", Label: "Additional Paid-In Capital", Concepts: []string{
		"AdditionalPaidInCapital", "AdditionalPaidInCapitalCommonStock",
	}},
	{Key: "retained_earnings", Label: "Retained Earnings", Concepts: []string{
		"RetainedEarningsAccumulatedDeficit",
	}},
	{Key: "aoci", Label: "Accumulated Other Comprehensive Income (Loss)", Concepts: []string{
		"AccumulatedOtherComprehensiveIncomeLossNetOfTax",
	}},
	{Key: "net_income", Label: "Net Income", Concepts: []string{
		"NetIncomeLoss", "ProfitLoss",
	}},
	{Key: "dividends_declared", Label: "Dividends Declared", Concepts: []string{
		"DividendsCommonStock", "DividendsCommonStockCash", "Dividends",
	}},
	{Key: "stock_issued", Label: "Stock Issued", Concepts: []string{
		"StockIssuedDuringPeriodValueNewIssues", "StockIssuedDuringPeriodValueShareBasedCompensation",
	}},
	{Key: "stock_repurchased", Label: "Stock Repurchased", Concepts: []string{
		"StockRepurchasedAndRetiredDuringPeriodValue", "StockRepurchasedDuringPeriodValue", "TreasuryStockValueAcquiredCostMethod",
	}},
	{Key: "total_equity", Label: "Total Stockholders' Equity", Concepts: []string{
		"StockholdersEquity", "StockholdersEquityIncludingPortionAttributableToNoncontrollingInterest",
	}, Total: true},
}
