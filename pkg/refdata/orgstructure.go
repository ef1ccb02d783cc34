package refdata

// BusinessLines is the org tree of the bank in declaration order. Weights
// are relative; they do not need to sum to one.
var BusinessLines = []BusinessLine{
	{
		Name:   "Corporate & Institutional Banking",
		Weight: 0.15,
		CostCenters: []CostCenter{
			{Code: "CC2001", Name: "CIB Corporate Banking"},
			{Code: "CC2002", Name: "CIB Investment Banking"},
			{Code: "CC2003", Name: "CIB Structured Finance"},
			{Code: "CC2004", Name: "CIB Transaction Banking"},
			{Code: "CC2005", Name: "CIB Client Coverage"},
		},
		JobFamilies: []string{
			"Corporate Banking", "Investment Banking", "Structured Finance",
			"Transaction Banking", "Client Advisory",
		},
		Divisions: []Division{
			{Name: "Corporate Banking", Departments: []Department{
				{Name: "Large Corporate Coverage", Teams: []Team{
					{Name: "Fortune 500 Coverage", SubTeams: []string{"Industrial Sector", "Consumer Sector", "Healthcare Sector", "Energy Sector"}},
					{Name: "Mid-Cap Coverage", SubTeams: []string{"Regional Coverage East", "Regional Coverage West", "Regional Coverage Central"}},
					{Name: "Public Sector", SubTeams: []string{"Federal Government", "State & Municipal", "Government Agencies"}},
				}},
				{Name: "Middle Market Banking", Teams: []Team{
					{Name: "MMB Coverage North", SubTeams: []string{"Northeast Accounts", "Midwest Accounts", "Pacific Northwest"}},
					{Name: "MMB Coverage South", SubTeams: []string{"Southeast Accounts", "Southwest Accounts", "Gulf Coast"}},
					{Name: "MMB Specialized Lending", SubTeams: []string{"Asset-Based Lending", "Equipment Finance", "Working Capital Solutions"}},
				}},
				{Name: "Multinational Corporate", Teams: []Team{
					{Name: "Global Subsidiaries Group", SubTeams: []string{"EMEA Subsidiaries", "APAC Subsidiaries", "LATAM Subsidiaries"}},
					{Name: "Cross-Border Solutions", SubTeams: []string{"Trade Finance Advisory", "FX Solutions", "Cash Management"}},
				}},
			}},
			{Name: "Investment Banking", Departments: []Department{
				{Name: "Debt Capital Markets", Teams: []Team{
					{Name: "Investment Grade Origination", SubTeams: []string{"IG Syndicate", "IG Private Placements", "IG Liability Management"}},
					{Name: "High Yield Origination", SubTeams: []string{"HY New Issues", "HY Restructuring", "Leveraged Finance"}},
					{Name: "Securitization", SubTeams: []string{"ABS Structuring", "MBS Structuring", "CLO Structuring"}},
				}},
				{Name: "Equity Capital Markets", Teams: []Team{
					{Name: "IPO Advisory", SubTeams: []string{"Tech IPO", "Healthcare IPO", "Industrial IPO"}},
					{Name: "Follow-On Offerings", SubTeams: []string{"Block Trades", "Convertibles", "Rights Issues"}},
				}},
				{Name: "M&A Advisory", Teams: []Team{
					{Name: "Strategic Advisory", SubTeams: []string{"Sell-Side M&A", "Buy-Side M&A", "Fairness Opinions"}},
					{Name: "Sector Coverage", SubTeams: []string{"TMT M&A", "Healthcare M&A", "Financial Institutions M&A", "Industrials M&A"}},
				}},
			}},
			{Name: "Structured Finance", Departments: []Department{
				{Name: "Project Finance", Teams: []Team{
					{Name: "Infrastructure Finance", SubTeams: []string{"Transport Infrastructure", "Social Infrastructure", "Digital Infrastructure"}},
					{Name: "Energy Project Finance", SubTeams: []string{"Renewable Energy", "Oil & Gas", "Power Generation"}},
				}},
				{Name: "Real Estate Finance", Teams: []Team{
					{Name: "Commercial Real Estate", SubTeams: []string{"Office & Retail", "Industrial & Logistics", "Hospitality"}},
					{Name: "Real Estate Structured Products", SubTeams: []string{"CMBS", "Real Estate Funds", "Mezzanine Lending"}},
				}},
			}},
			{Name: "Transaction Banking", Departments: []Department{
				{Name: "Cash Management", Teams: []Team{
					{Name: "Liquidity Solutions", SubTeams: []string{"Notional Pooling", "Physical Pooling", "Investment Sweeps"}},
					{Name: "Payments & Collections", SubTeams: []string{"Domestic Payments", "Cross-Border Payments", "Receivables Management"}},
				}},
				{Name: "Trade Finance", Teams: []Team{
					{Name: "Documentary Trade", SubTeams: []string{"Letters of Credit", "Documentary Collections", "Guarantees & Standby LC"}},
					{Name: "Supply Chain Finance", SubTeams: []string{"Payables Finance", "Receivables Finance", "Distributor Finance"}},
				}},
				{Name: "Securities Services", Teams: []Team{
					{Name: "Custody & Settlement", SubTeams: []string{"Global Custody", "Local Custody", "Settlement Operations"}},
					{Name: "Fund Services", SubTeams: []string{"Fund Administration", "Transfer Agency", "Fund Accounting"}},
				}},
			}},
		},
	},
	{
		Name:   "Global Markets",
		Weight: 0.12,
		CostCenters: []CostCenter{
			{Code: "CC2010", Name: "GM Fixed Income Trading"},
			{Code: "CC2011", Name: "GM Equities Trading"},
			{Code: "CC2012", Name: "GM FX & Commodities"},
			{Code: "CC2013", Name: "GM Sales & Distribution"},
			{Code: "CC2014", Name: "GM Structuring"},
		},
		JobFamilies: []string{
			"Sales & Trading", "Quantitative Research", "Market Making", "Structuring", "Sales",
		},
		Divisions: []Division{
			{Name: "Fixed Income", Departments: []Department{
				{Name: "Rates Trading", Teams: []Team{
					{Name: "Government Bonds", SubTeams: []string{"US Treasuries", "European Sovereigns", "EM Rates"}},
					{Name: "Interest Rate Derivatives", SubTeams: []string{"Swaps Trading", "Options Trading", "Basis Trading"}},
					{Name: "Inflation Trading", SubTeams: []string{"TIPS Trading", "Inflation Swaps", "Real Rate Products"}},
				}},
				{Name: "Credit Trading", Teams: []Team{
					{Name: "Investment Grade Credit", SubTeams: []string{"IG Cash Bonds", "IG CDS", "IG Index Trading"}},
					{Name: "High Yield Credit", SubTeams: []string{"HY Cash Bonds", "HY CDS", "Distressed Debt"}},
					{Name: "Emerging Market Credit", SubTeams: []string{"EM Sovereign", "EM Corporate", "EM Local Currency"}},
				}},
			}},
			{Name: "Equities", Departments: []Department{
				{Name: "Cash Equities", Teams: []Team{
					{Name: "Equity Trading Desk", SubTeams: []string{"US Equities", "European Equities", "APAC Equities"}},
					{Name: "Program Trading", SubTeams: []string{"Index Arbitrage", "Portfolio Trading", "Transition Management"}},
				}},
				{Name: "Equity Derivatives", Teams: []Team{
					{Name: "Flow Derivatives", SubTeams: []string{"Single Stock Options", "Index Options", "Variance Swaps"}},
					{Name: "Exotic Derivatives", SubTeams: []string{"Structured Products", "Correlation Trading", "Dividend Trading"}},
				}},
			}},
			{Name: "FX & Commodities", Departments: []Department{
				{Name: "Foreign Exchange", Teams: []Team{
					{Name: "G10 FX", SubTeams: []string{"Spot FX", "FX Forwards", "FX Options"}},
					{Name: "EM FX", SubTeams: []string{"LATAM FX", "Asia FX", "CEEMEA FX"}},
				}},
				{Name: "Commodities", Teams: []Team{
					{Name: "Energy Commodities", SubTeams: []string{"Crude Oil Trading", "Natural Gas Trading", "Power Trading"}},
					{Name: "Metals & Agriculture", SubTeams: []string{"Precious Metals", "Base Metals", "Agricultural Commodities"}},
				}},
			}},
		},
	},
	{
		Name:   "Wealth & Private Banking",
		Weight: 0.10,
		CostCenters: []CostCenter{
			{Code: "CC2020", Name: "WPB Private Banking"},
			{Code: "CC2021", Name: "WPB Wealth Advisory"},
			{Code: "CC2022", Name: "WPB Trust & Estate"},
			{Code: "CC2023", Name: "WPB Investment Solutions"},
		},
		JobFamilies: []string{
			"Wealth Management", "Private Banking", "Trust & Estate", "Investment Advisory",
			"Financial Planning",
		},
		Divisions: []Division{
			{Name: "Private Banking", Departments: []Department{
				{Name: "Ultra High Net Worth", Teams: []Team{
					{Name: "UHNW Relationship Management", SubTeams: []string{"Family Office Coverage", "Single Family Office", "Multi-Family Office"}},
					{Name: "UHNW Investment Advisory", SubTeams: []string{"Direct Investing", "Co-Investment", "Alternative Investments"}},
				}},
				{Name: "High Net Worth", Teams: []Team{
					{Name: "HNW Advisors", SubTeams: []string{"HNW Northeast", "HNW Southeast", "HNW West Coast", "HNW International"}},
					{Name: "HNW Lending", SubTeams: []string{"Mortgage & Real Estate", "Securities-Based Lending", "Art & Aviation Finance"}},
				}},
			}},
			{Name: "Wealth Advisory", Departments: []Department{
				{Name: "Financial Planning", Teams: []Team{
					{Name: "Comprehensive Planning", SubTeams: []string{"Retirement Planning", "Education Planning", "Insurance Planning"}},
					{Name: "Tax Advisory", SubTeams: []string{"Income Tax Planning", "Estate Tax Planning", "International Tax"}},
				}},
				{Name: "Investment Management", Teams: []Team{
					{Name: "Discretionary Portfolios", SubTeams: []string{"Equity Portfolios", "Fixed Income Portfolios", "Multi-Asset Portfolios"}},
					{Name: "Advisory Portfolios", SubTeams: []string{"Thematic Investing", "ESG Portfolios", "Income Strategies"}},
				}},
			}},
			{Name: "Trust & Estate", Departments: []Department{
				{Name: "Fiduciary Services", Teams: []Team{
					{Name: "Trust Administration", SubTeams: []string{"Personal Trusts", "Charitable Trusts", "Special Needs Trusts"}},
					{Name: "Estate Settlement", SubTeams: []string{"Probate Services", "Estate Distribution", "Executor Services"}},
				}},
				{Name: "Institutional Trust", Teams: []Team{
					{Name: "Corporate Trust", SubTeams: []string{"Bond Trustee", "Escrow Services", "Indenture Trustee"}},
					{Name: "Retirement Trust", SubTeams: []string{"401k Trustee", "Pension Trustee", "ESOP Trustee"}},
				}},
			}},
		},
	},
	{
		Name:   "Risk Management",
		Weight: 0.12,
		CostCenters: []CostCenter{
			{Code: "CC2030", Name: "Risk Credit Risk"},
			{Code: "CC2031", Name: "Risk Market Risk"},
			{Code: "CC2032", Name: "Risk Operational Risk"},
			{Code: "CC2033", Name: "Risk Model Risk"},
			{Code: "CC2034", Name: "Risk Enterprise Risk"},
		},
		JobFamilies: []string{
			"Credit Risk", "Market Risk", "Operational Risk", "Model Risk", "Enterprise Risk",
			"Quantitative Risk",
		},
		Divisions: []Division{
			{Name: "Credit Risk", Departments: []Department{
				{Name: "Wholesale Credit Risk", Teams: []Team{
					{Name: "Corporate Credit Analysis", SubTeams: []string{"IG Credit Analysis", "HY Credit Analysis", "Leveraged Finance Credit"}},
					{Name: "Portfolio Management", SubTeams: []string{"Sector Concentration", "Geographic Concentration", "Single Name Limits"}},
					{Name: "Credit Approval", SubTeams: []string{"New Deal Approval", "Annual Reviews", "Watch List Management"}},
				}},
				{Name: "Counterparty Credit Risk", Teams: []Team{
					{Name: "CCR Measurement", SubTeams: []string{"PFE Calculation", "CVA Desk", "Wrong Way Risk"}},
					{Name: "Margin & Collateral", SubTeams: []string{"Initial Margin", "Variation Margin", "Collateral Optimization"}},
				}},
			}},
			{Name: "Market Risk", Departments: []Department{
				{Name: "Market Risk Measurement", Teams: []Team{
					{Name: "VaR & Stress Testing", SubTeams: []string{"Historical VaR", "Monte Carlo VaR", "Stress Scenarios"}},
					{Name: "Sensitivity Analysis", SubTeams: []string{"Greeks Monitoring", "Basis Risk", "Correlation Risk"}},
				}},
				{Name: "Market Risk Oversight", Teams: []Team{
					{Name: "Limit Monitoring", SubTeams: []string{"Trading Limits", "Desk Limits", "Firm-Wide Limits"}},
					{Name: "P&L Attribution", SubTeams: []string{"Risk P&L", "Actual P&L", "P&L Explain"}},
				}},
			}},
			{Name: "Operational Risk", Departments: []Department{
				{Name: "Operational Risk Framework", Teams: []Team{
					{Name: "RCSA & Controls", SubTeams: []string{"Control Testing", "Risk Assessment", "Issue Remediation"}},
					{Name: "Loss Event Management", SubTeams: []string{"Internal Loss Data", "External Loss Data", "Scenario Analysis"}},
				}},
				{Name: "Business Continuity", Teams: []Team{
					{Name: "BCM Planning", SubTeams: []string{"Crisis Management", "Disaster Recovery", "Pandemic Planning"}},
					{Name: "Third Party Risk", SubTeams: []string{"Vendor Assessment", "Concentration Risk", "Fourth Party Risk"}},
				}},
			}},
			{Name: "Model Risk", Departments: []Department{
				{Name: "Model Validation", Teams: []Team{
					{Name: "Market Risk Models", SubTeams: []string{"Pricing Models", "VaR Models", "Scenario Models"}},
					{Name: "Credit Risk Models", SubTeams: []string{"PD Models", "LGD Models", "EAD Models"}},
					{Name: "Regulatory Models", SubTeams: []string{"CCAR Models", "CECL Models", "Basel Models"}},
				}},
				{Name: "Model Governance", Teams: []Team{
					{Name: "Model Inventory", SubTeams: []string{"Model Registry", "Model Tiering", "Model Documentation"}},
					{Name: "Model Performance", SubTeams: []string{"Backtesting", "Benchmarking", "Model Monitoring"}},
				}},
			}},
		},
	},
	{
		Name:   "Technology & Operations",
		Weight: 0.20,
		CostCenters: []CostCenter{
			{Code: "CC2040", Name: "Tech Core Banking Systems"},
			{Code: "CC2041", Name: "Tech Digital & Channels"},
			{Code: "CC2042", Name: "Tech Infrastructure & Cloud"},
			{Code: "CC2043", Name: "Tech Data & Analytics"},
			{Code: "CC2044", Name: "Tech Cybersecurity"},
			{Code: "CC2045", Name: "Ops Banking Operations"},
			{Code: "CC2046", Name: "Ops Market Operations"},
		},
		JobFamilies: []string{
			"Software Engineering", "Infrastructure Engineering", "Data Engineering",
			"Cybersecurity", "Banking Operations", "Market Operations", "DevOps & SRE",
			"QA Engineering",
		},
		Divisions: []Division{
			{Name: "Core Banking Technology", Departments: []Department{
				{Name: "Core Banking Platform", Teams: []Team{
					{Name: "Account Management Systems", SubTeams: []string{"Deposit Systems", "Loan Origination", "Account Servicing"}},
					{Name: "Payment Systems", SubTeams: []string{"Wire Transfer Platform", "ACH Processing", "Real-Time Payments"}},
					{Name: "Ledger Systems", SubTeams: []string{"General Ledger", "Sub-Ledger", "Reconciliation Engine"}},
				}},
				{Name: "Trading Technology", Teams: []Team{
					{Name: "Front Office Systems", SubTeams: []string{"Order Management", "Execution Management", "Pricing Engines"}},
					{Name: "Risk Technology", SubTeams: []string{"Risk Calculation Engine", "Limit Management System", "P&L Systems"}},
					{Name: "Post-Trade Technology", SubTeams: []string{"Trade Capture", "Confirmation & Matching", "Settlement Systems"}},
				}},
			}},
			{Name: "Digital & Channels", Departments: []Department{
				{Name: "Digital Banking", Teams: []Team{
					{Name: "Online Banking Platform", SubTeams: []string{"Web Frontend", "API Gateway", "Session Management"}},
					{Name: "Mobile Banking", SubTeams: []string{"iOS Development", "Android Development", "Mobile Middleware"}},
				}},
				{Name: "Client Portals", Teams: []Team{
					{Name: "Institutional Portal", SubTeams: []string{"Portfolio Reporting", "Trade Instruction", "Document Management"}},
					{Name: "Wealth Portal", SubTeams: []string{"Client Dashboard", "Performance Reporting", "Secure Messaging"}},
				}},
			}},
			{Name: "Infrastructure & Cloud", Departments: []Department{
				{Name: "Cloud Engineering", Teams: []Team{
					{Name: "Cloud Platform", SubTeams: []string{"AWS Infrastructure", "Azure Infrastructure", "Multi-Cloud Orchestration"}},
					{Name: "Container & Kubernetes", SubTeams: []string{"Container Platform", "Service Mesh", "Cluster Management"}},
				}},
				{Name: "Network & Compute", Teams: []Team{
					{Name: "Network Engineering", SubTeams: []string{"WAN & Connectivity", "Load Balancing", "DNS & Firewall"}},
					{Name: "Compute Services", SubTeams: []string{"Server Management", "Virtualization", "HPC Cluster"}},
				}},
			}},
			{Name: "Data & Analytics", Departments: []Department{
				{Name: "Data Engineering", Teams: []Team{
					{Name: "Data Platform", SubTeams: []string{"Data Lake", "Data Warehouse", "Streaming Platform"}},
					{Name: "ETL & Integration", SubTeams: []string{"Batch Processing", "Real-Time Integration", "API Integration"}},
				}},
				{Name: "Analytics & BI", Teams: []Team{
					{Name: "Business Intelligence", SubTeams: []string{"Executive Dashboards", "Regulatory Reporting BI", "Client Analytics"}},
					{Name: "Advanced Analytics", SubTeams: []string{"Machine Learning Ops", "NLP Solutions", "Predictive Analytics"}},
				}},
			}},
			{Name: "Cybersecurity", Departments: []Department{
				{Name: "Security Operations", Teams: []Team{
					{Name: "SOC", SubTeams: []string{"Threat Detection", "Incident Response", "Security Monitoring"}},
					{Name: "Vulnerability Management", SubTeams: []string{"Penetration Testing", "Patch Management", "Application Security"}},
				}},
				{Name: "Identity & Access", Teams: []Team{
					{Name: "IAM Engineering", SubTeams: []string{"Directory Services", "SSO & Federation", "Privileged Access"}},
					{Name: "Access Governance", SubTeams: []string{"Access Certification", "Role Engineering", "Entitlement Management"}},
				}},
			}},
			{Name: "Banking Operations", Departments: []Department{
				{Name: "Payment Operations", Teams: []Team{
					{Name: "Wire Operations", SubTeams: []string{"Domestic Wires", "International Wires", "Wire Investigation"}},
					{Name: "ACH Operations", SubTeams: []string{"ACH Origination", "ACH Returns", "ACH Exception Processing"}},
				}},
				{Name: "Loan Operations", Teams: []Team{
					{Name: "Loan Servicing", SubTeams: []string{"Payment Processing", "Escrow Administration", "Insurance Tracking"}},
					{Name: "Loan Closing", SubTeams: []string{"Document Preparation", "Funding", "Post-Closing Review"}},
				}},
			}},
			{Name: "Market Operations", Departments: []Department{
				{Name: "Trade Support", Teams: []Team{
					{Name: "FI Trade Support", SubTeams: []string{"Bond Settlements", "Repo Operations", "Derivative Settlements"}},
					{Name: "Equity Trade Support", SubTeams: []string{"Equity Settlements", "Corporate Actions", "Stock Borrow & Lending"}},
				}},
				{Name: "Collateral Management", Teams: []Team{
					{Name: "Margin Operations", SubTeams: []string{"Margin Calls", "Collateral Substitution", "Dispute Resolution"}},
					{Name: "Collateral Optimization", SubTeams: []string{"Collateral Allocation", "Rehypothecation", "Collateral Reporting"}},
				}},
			}},
		},
	},
	{
		Name:   "Finance & Accounting",
		Weight: 0.10,
		CostCenters: []CostCenter{
			{Code: "CC2050", Name: "Finance Financial Reporting"},
			{Code: "CC2051", Name: "Finance Treasury & ALM"},
			{Code: "CC2052", Name: "Finance FP&A"},
			{Code: "CC2053", Name: "Finance Tax"},
			{Code: "CC2054", Name: "Finance Regulatory Reporting"},
		},
		JobFamilies: []string{
			"Financial Reporting", "Treasury Management", "FP&A", "Tax Advisory",
			"Regulatory Reporting", "Accounting Operations",
		},
		Divisions: []Division{
			{Name: "Financial Reporting", Departments: []Department{
				{Name: "External Reporting", Teams: []Team{
					{Name: "SEC Reporting", SubTeams: []string{"10-K & 10-Q Preparation", "8-K Filings", "Proxy Statement"}},
					{Name: "IFRS Reporting", SubTeams: []string{"IFRS 9 Reporting", "IFRS 17 Reporting", "Consolidation"}},
				}},
				{Name: "Management Reporting", Teams: []Team{
					{Name: "P&L Reporting", SubTeams: []string{"Business Line P&L", "Product P&L", "Entity P&L"}},
					{Name: "Balance Sheet Reporting", SubTeams: []string{"Asset Reporting", "Liability Reporting", "Capital Reporting"}},
				}},
			}},
			{Name: "Treasury & ALM", Departments: []Department{
				{Name: "Treasury", Teams: []Team{
					{Name: "Funding & Liquidity", SubTeams: []string{"Short-Term Funding", "Long-Term Funding", "Contingency Funding"}},
					{Name: "Investment Portfolio", SubTeams: []string{"AFS Portfolio", "HTM Portfolio", "Trading Securities"}},
				}},
				{Name: "Asset-Liability Management", Teams: []Team{
					{Name: "Interest Rate Risk", SubTeams: []string{"NII Modeling", "EVE Analysis", "Basis Risk"}},
					{Name: "Liquidity Risk", SubTeams: []string{"LCR Management", "NSFR Management", "Intraday Liquidity"}},
				}},
			}},
			{Name: "FP&A", Departments: []Department{
				{Name: "Financial Planning", Teams: []Team{
					{Name: "Budgeting & Forecasting", SubTeams: []string{"Revenue Forecasting", "Expense Budgeting", "Capital Planning"}},
					{Name: "Strategic Planning", SubTeams: []string{"Long-Range Planning", "Scenario Analysis", "Business Case Analysis"}},
				}},
				{Name: "Performance Analytics", Teams: []Team{
					{Name: "Profitability Analysis", SubTeams: []string{"Client Profitability", "Product Profitability", "Channel Profitability"}},
					{Name: "Cost Analytics", SubTeams: []string{"Cost Allocation", "Activity-Based Costing", "Variance Analysis"}},
				}},
			}},
		},
	},
	{
		Name:   "Compliance",
		Weight: 0.06,
		CostCenters: []CostCenter{
			{Code: "CC2060", Name: "Compliance Regulatory"},
			{Code: "CC2061", Name: "Compliance AML & Sanctions"},
			{Code: "CC2062", Name: "Compliance Advisory"},
		},
		JobFamilies: []string{
			"Regulatory Compliance", "AML & Sanctions", "Compliance Advisory", "Surveillance",
		},
		Divisions: []Division{
			{Name: "Regulatory Compliance", Departments: []Department{
				{Name: "Banking Regulation", Teams: []Team{
					{Name: "Capital & Prudential", SubTeams: []string{"Basel Compliance", "Stress Testing Compliance", "Recovery & Resolution"}},
					{Name: "Conduct & Markets Regulation", SubTeams: []string{"MiFID Compliance", "Dodd-Frank Compliance", "Best Execution"}},
				}},
				{Name: "Regulatory Reporting Compliance", Teams: []Team{
					{Name: "Prudential Reporting", SubTeams: []string{"Capital Adequacy Reporting", "Liquidity Reporting", "Large Exposure Reporting"}},
					{Name: "Statistical Reporting", SubTeams: []string{"Central Bank Reporting", "Trade Repository Reporting", "Transaction Reporting"}},
				}},
			}},
			{Name: "AML & Sanctions", Departments: []Department{
				{Name: "AML Operations", Teams: []Team{
					{Name: "Transaction Monitoring", SubTeams: []string{"Alert Review", "Case Investigation", "SAR Filing"}},
					{Name: "KYC & Due Diligence", SubTeams: []string{"Client Onboarding", "Enhanced Due Diligence", "Periodic Review"}},
				}},
				{Name: "Sanctions Compliance", Teams: []Team{
					{Name: "Sanctions Screening", SubTeams: []string{"Payment Screening", "Client Screening", "Embargo Compliance"}},
					{Name: "Sanctions Policy", SubTeams: []string{"Sanctions List Management", "Sanctions Risk Assessment", "Sanctions Advisory"}},
				}},
			}},
		},
	},
	{
		Name:   "Legal",
		Weight: 0.05,
		CostCenters: []CostCenter{
			{Code: "CC2070", Name: "Legal General Counsel"},
			{Code: "CC2071", Name: "Legal Transactional"},
			{Code: "CC2072", Name: "Legal Regulatory & Litigation"},
		},
		JobFamilies: []string{
			"Legal Advisory", "Transactional Legal", "Regulatory Legal", "Litigation",
		},
		Divisions: []Division{
			{Name: "General Counsel", Departments: []Department{
				{Name: "Corporate Legal", Teams: []Team{
					{Name: "Corporate Governance", SubTeams: []string{"Board Advisory", "Corporate Secretary", "Entity Management"}},
					{Name: "Employment Law", SubTeams: []string{"Employment Advisory", "Benefits Legal", "Labor Relations"}},
				}},
				{Name: "Legal Operations", Teams: []Team{
					{Name: "Legal Technology", SubTeams: []string{"Contract Management Systems", "eDiscovery Platform", "Legal Analytics"}},
					{Name: "Outside Counsel Management", SubTeams: []string{"Firm Selection", "Fee Management", "Performance Review"}},
				}},
			}},
			{Name: "Transactional Legal", Departments: []Department{
				{Name: "Banking & Finance Legal", Teams: []Team{
					{Name: "Lending Legal", SubTeams: []string{"Syndicated Loan Docs", "Bilateral Lending", "Restructuring Legal"}},
					{Name: "Capital Markets Legal", SubTeams: []string{"Debt Issuance", "Equity Issuance", "Derivatives Legal"}},
				}},
				{Name: "M&A Legal", Teams: []Team{
					{Name: "Deal Execution Legal", SubTeams: []string{"Due Diligence", "Transaction Structuring", "Closing & Integration"}},
				}},
			}},
			{Name: "Regulatory & Litigation", Departments: []Department{
				{Name: "Regulatory Legal", Teams: []Team{
					{Name: "Regulatory Examinations", SubTeams: []string{"OCC Exams", "Fed Exams", "State Regulator Exams"}},
					{Name: "Enforcement Defense", SubTeams: []string{"Investigation Response", "Consent Order Management", "Remediation Oversight"}},
				}},
				{Name: "Litigation", Teams: []Team{
					{Name: "Commercial Litigation", SubTeams: []string{"Contract Disputes", "Securities Litigation", "Class Action Defense"}},
				}},
			}},
		},
	},
	{
		Name:   "Human Resources",
		Weight: 0.06,
		CostCenters: []CostCenter{
			{Code: "CC2080", Name: "HR Talent Acquisition"},
			{Code: "CC2081", Name: "HR Compensation & Benefits"},
			{Code: "CC2082", Name: "HR Business Partners"},
			{Code: "CC2083", Name: "HR Learning & Development"},
		},
		JobFamilies: []string{
			"Talent Acquisition", "Compensation & Benefits", "HR Business Partnering",
			"Learning & Development", "HR Analytics", "Employee Relations",
		},
		Divisions: []Division{
			{Name: "Talent Acquisition", Departments: []Department{
				{Name: "Experienced Hire", Teams: []Team{
					{Name: "Front Office Recruiting", SubTeams: []string{"Banking Recruiting", "Markets Recruiting", "Technology Recruiting"}},
					{Name: "Corporate Functions Recruiting", SubTeams: []string{"Risk & Compliance Recruiting", "Finance Recruiting", "Operations Recruiting"}},
				}},
				{Name: "Campus & Early Careers", Teams: []Team{
					{Name: "Campus Recruiting", SubTeams: []string{"Analyst Program", "Associate Program", "Summer Internship"}},
					{Name: "Early Career Development", SubTeams: []string{"Rotational Programs", "Graduate Schemes", "Apprenticeships"}},
				}},
			}},
			{Name: "Compensation & Benefits", Departments: []Department{
				{Name: "Compensation", Teams: []Team{
					{Name: "Base Compensation", SubTeams: []string{"Salary Benchmarking", "Pay Equity Analysis", "Job Architecture"}},
					{Name: "Incentive Compensation", SubTeams: []string{"Bonus Pool Management", "Deferred Compensation", "Long-Term Incentives"}},
				}},
				{Name: "Benefits", Teams: []Team{
					{Name: "Health & Welfare", SubTeams: []string{"Medical Plans", "Dental & Vision", "Wellness Programs"}},
					{Name: "Retirement Benefits", SubTeams: []string{"401k Administration", "Pension Management", "Executive Benefits"}},
				}},
			}},
			{Name: "HR Business Partnering", Departments: []Department{
				{Name: "Front Office HRBP", Teams: []Team{
					{Name: "CIB HRBP", SubTeams: []string{"CIB Banking HRBP", "CIB Markets HRBP"}},
					{Name: "Wealth HRBP", SubTeams: []string{"Private Banking HRBP", "Asset Management HRBP"}},
				}},
				{Name: "Corporate Functions HRBP", Teams: []Team{
					{Name: "Technology HRBP", SubTeams: []string{"Engineering HRBP", "Infrastructure HRBP"}},
					{Name: "Risk & Control HRBP", SubTeams: []string{"Risk HRBP", "Compliance HRBP", "Legal HRBP"}},
				}},
			}},
			{Name: "Learning & Development", Departments: []Department{
				{Name: "Professional Development", Teams: []Team{
					{Name: "Leadership Development", SubTeams: []string{"Executive Leadership", "Emerging Leaders", "First-Time Managers"}},
					{Name: "Technical Training", SubTeams: []string{"Banking & Finance Training", "Technology Training", "Risk & Compliance Training"}},
				}},
				{Name: "Learning Operations", Teams: []Team{
					{Name: "Learning Technology", SubTeams: []string{"LMS Administration", "Digital Learning", "Virtual Classroom"}},
					{Name: "Content Development", SubTeams: []string{"Curriculum Design", "eLearning Production", "Assessment Design"}},
				}},
			}},
		},
	},
	{
		Name:   "Internal Audit",
		Weight: 0.04,
		CostCenters: []CostCenter{
			{Code: "CC2090", Name: "Audit Financial Audit"},
			{Code: "CC2091", Name: "Audit Technology Audit"},
			{Code: "CC2092", Name: "Audit Regulatory Audit"},
		},
		JobFamilies: []string{
			"Financial Audit", "Technology Audit", "Regulatory Audit", "Audit Analytics",
		},
		Divisions: []Division{
			{Name: "Financial Audit", Departments: []Department{
				{Name: "Banking Audit", Teams: []Team{
					{Name: "Credit Audit", SubTeams: []string{"Wholesale Credit Audit", "Retail Credit Audit", "Credit Model Audit"}},
					{Name: "Treasury Audit", SubTeams: []string{"ALM Audit", "Investment Portfolio Audit", "Funding Audit"}},
				}},
				{Name: "Markets Audit", Teams: []Team{
					{Name: "Trading Audit", SubTeams: []string{"FI Trading Audit", "Equity Trading Audit", "Derivatives Audit"}},
					{Name: "Valuation Audit", SubTeams: []string{"Mark-to-Market Audit", "Fair Value Audit", "Model Valuation Audit"}},
				}},
			}},
			{Name: "Technology Audit", Departments: []Department{
				{Name: "IT General Controls", Teams: []Team{
					{Name: "Access Controls Audit", SubTeams: []string{"Logical Access Audit", "Privileged Access Audit", "Segregation of Duties"}},
					{Name: "Change Management Audit", SubTeams: []string{"SDLC Audit", "Release Management Audit", "Configuration Management"}},
				}},
				{Name: "Cybersecurity Audit", Teams: []Team{
					{Name: "Security Controls Audit", SubTeams: []string{"Network Security Audit", "Application Security Audit", "Data Protection Audit"}},
					{Name: "Incident Response Audit", SubTeams: []string{"SOC Effectiveness", "Breach Response Audit", "Forensics Capability"}},
				}},
			}},
		},
	},
}
