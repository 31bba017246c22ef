package xbrl

import (
	"testing"
)

// testInstance is a standalone XBRL instance exercising contexts with and
// without dimensions, duplicate roll-forward occurrences, and classic
// footnote links with divergent id/label attributes.
const testInstance = `<?xml version="1.0" encoding="utf-8"?>
<xbrli:xbrl xmlns:xbrli="http://www.xbrl.org/2003/instance"
            xmlns:link="http://www.xbrl.org/2003/linkbase"
            xmlns:xlink="http://www.w3.org/1999/xlink"
            xmlns:xbrldi="http://xbrl.org/2006/xbrldi"
            xmlns:us-gaap="http://fasb.org/us-gaap/2023">
  <xbrli:context id="cFY23">
    <xbrli:entity><xbrli:identifier scheme="http://www.sec.gov/CIK">0000320193</xbrli:identifier></xbrli:entity>
    <xbrli:period><xbrli:startDate>2023-01-01</xbrli:startDate><xbrli:endDate>2023-12-31</xbrli:endDate></xbrli:period>
  </xbrli:context>
  <xbrli:context id="cFY22">
    <xbrli:entity><xbrli:identifier scheme="http://www.sec.gov/CIK">0000320193</xbrli:identifier></xbrli:entity>
    <xbrli:period><xbrli:startDate>2022-01-01</xbrli:startDate><xbrli:endDate>2022-12-31</xbrli:endDate></xbrli:period>
  </xbrli:context>
  <xbrli:context id="cFY23Products">
    <xbrli:entity>
      <xbrli:identifier scheme="http://www.sec.gov/CIK">0000320193</xbrli:identifier>
      <xbrli:segment>
        <xbrldi:explicitMember dimension="srt:ProductOrServiceAxis">us-gaap:ProductMember</xbrldi:explicitMember>
      </xbrli:segment>
    </xbrli:entity>
    <xbrli:period><xbrli:startDate>2023-01-01</xbrli:startDate><xbrli:endDate>2023-12-31</xbrli:endDate></xbrli:period>
  </xbrli:context>
  <xbrli:context id="cFY23Services">
    <xbrli:entity>
      <xbrli:identifier scheme="http://www.sec.gov/CIK">0000320193</xbrli:identifier>
      <xbrli:segment>
        <xbrldi:explicitMember dimension="srt:ProductOrServiceAxis">us-gaap:ServiceMember</xbrldi:explicitMember>
      </xbrli:segment>
    </xbrli:entity>
    <xbrli:period><xbrli:startDate>2023-01-01</xbrli:startDate><xbrli:endDate>2023-12-31</xbrli:endDate></xbrli:period>
  </xbrli:context>
  <xbrli:context id="cFY23Americas">
    <xbrli:entity>
      <xbrli:identifier scheme="http://www.sec.gov/CIK">0000320193</xbrli:identifier>
      <xbrli:segment>
        <xbrldi:explicitMember dimension="us-gaap:StatementBusinessSegmentsAxis">us-gaap:OperatingSegmentsMember</xbrldi:explicitMember>
        <xbrldi:explicitMember dimension="us-gaap:StatementGeographicalAxis">us-gaap:AmericasMember</xbrldi:explicitMember>
      </xbrli:segment>
    </xbrli:entity>
    <xbrli:period><xbrli:startDate>2023-01-01</xbrli:startDate><xbrli:endDate>2023-12-31</xbrli:endDate></xbrli:period>
  </xbrli:context>
  <xbrli:context id="i2021">
    <xbrli:entity><xbrli:identifier scheme="http://www.sec.gov/CIK">0000320193</xbrli:identifier></xbrli:entity>
    <xbrli:period><xbrli:instant>2021-12-31</xbrli:instant></xbrli:period>
  </xbrli:context>
  <xbrli:context id="i2022">
    <xbrli:entity><xbrli:identifier scheme="http://www.sec.gov/CIK">0000320193</xbrli:identifier></xbrli:entity>
    <xbrli:period><xbrli:instant>2022-12-31</xbrli:instant></xbrli:period>
  </xbrli:context>
  <xbrli:context id="i2023">
    <xbrli:entity><xbrli:identifier scheme="http://www.sec.gov/CIK">0000320193</xbrli:identifier></xbrli:entity>
    <xbrli:period><xbrli:instant>2023-12-31</xbrli:instant></xbrli:period>
  </xbrli:context>
  <xbrli:unit id="usd"><xbrli:measure>iso4217:USD</xbrli:measure></xbrli:unit>

  <us-gaap:Revenues id="fact_rev" contextRef="cFY23" unitRef="usd" decimals="-6">500</us-gaap:Revenues>
  <us-gaap:Revenues contextRef="cFY22" unitRef="usd" decimals="-6">450</us-gaap:Revenues>
  <us-gaap:Revenues contextRef="cFY23Products" unitRef="usd" decimals="-6">300</us-gaap:Revenues>
  <us-gaap:Revenues contextRef="cFY23Services" unitRef="usd" decimals="-6">200</us-gaap:Revenues>
  <us-gaap:Revenues contextRef="cFY23Americas" unitRef="usd" decimals="-6">250</us-gaap:Revenues>
  <us-gaap:NetIncomeLoss contextRef="cFY23" unitRef="usd" decimals="-6">100</us-gaap:NetIncomeLoss>
  <us-gaap:NetIncomeLoss contextRef="cFY22" unitRef="usd" decimals="-6">90</us-gaap:NetIncomeLoss>
  <us-gaap:Assets contextRef="i2023" unitRef="usd" decimals="-6">1200</us-gaap:Assets>
  <us-gaap:Assets contextRef="i2022" unitRef="usd" decimals="-6">1100</us-gaap:Assets>

  <us-gaap:CommonStockValue contextRef="i2021" unitRef="usd" decimals="-6">40</us-gaap:CommonStockValue>
  <us-gaap:CommonStockValue contextRef="i2022" unitRef="usd" decimals="-6">42</us-gaap:CommonStockValue>
  <us-gaap:CommonStockValue contextRef="i2023" unitRef="usd" decimals="-6">45</us-gaap:CommonStockValue>
  <us-gaap:StockholdersEquity contextRef="i2021" unitRef="usd" decimals="-6">800</us-gaap:StockholdersEquity>
  <us-gaap:StockholdersEquity contextRef="i2022" unitRef="usd" decimals="-6">850</us-gaap:StockholdersEquity>
  <us-gaap:StockholdersEquity contextRef="i2023" unitRef="usd" decimals="-6">900</us-gaap:StockholdersEquity>

  <us-gaap:BadFact contextRef="cMissing" unitRef="usd">7</us-gaap:BadFact>

  <link:footnoteLink xlink:role="http://www.xbrl.org/2003/role/link">
    <link:loc xlink:label="fact_rev" xlink:href="#fact_rev"/>
    <link:footnote xlink:label="lbl_footnote_0" id="FN_0" xml:lang="en-US">Includes deferred revenue adjustments.</link:footnote>
    <link:footnoteArc xlink:from="fact_rev" xlink:to="lbl_footnote_0"/>
  </link:footnoteLink>
</xbrli:xbrl>`

// testLinkbase carries the presentation roles: income, balance, the
// primary equity statement (with a roll-forward concept) and its
// parenthetical near-duplicate, deliberately placed before the primary.
const testLinkbase = `<?xml version="1.0" encoding="utf-8"?>
<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase" xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:presentationLink xlink:role="http://example.com/role/StatementsOfIncome">
    <link:loc xlink:label="loc_isAbs" xlink:href="us-gaap-2023.xsd#us-gaap_IncomeStatementAbstract"/>
    <link:loc xlink:label="loc_rev" xlink:href="us-gaap-2023.xsd#us-gaap_Revenues"/>
    <link:loc xlink:label="loc_ni" xlink:href="us-gaap-2023.xsd#us-gaap_NetIncomeLoss"/>
    <link:presentationArc xlink:from="loc_isAbs" xlink:to="loc_rev" order="1"/>
    <link:presentationArc xlink:from="loc_isAbs" xlink:to="loc_ni" order="2"/>
  </link:presentationLink>
  <link:presentationLink xlink:role="http://example.com/role/BalanceSheets">
    <link:loc xlink:label="loc_bsAbs" xlink:href="us-gaap-2023.xsd#us-gaap_StatementOfFinancialPositionAbstract"/>
    <link:loc xlink:label="loc_assets" xlink:href="us-gaap-2023.xsd#us-gaap_Assets"/>
    <link:presentationArc xlink:from="loc_bsAbs" xlink:to="loc_assets" order="1"/>
  </link:presentationLink>
  <link:presentationLink xlink:role="http://example.com/role/StatementsOfStockholdersEquityParenthetical">
    <link:loc xlink:label="loc_cs" xlink:href="us-gaap-2023.xsd#us-gaap_CommonStockValue"/>
  </link:presentationLink>
  <link:presentationLink xlink:role="http://example.com/role/StatementsOfStockholdersEquity">
    <link:loc xlink:label="loc_roll" xlink:href="us-gaap-2023.xsd#us-gaap_IncreaseDecreaseInStockholdersEquityRollForward"/>
    <link:loc xlink:label="loc_cs" xlink:href="us-gaap-2023.xsd#us-gaap_CommonStockValue"/>
    <link:loc xlink:label="loc_ni" xlink:href="us-gaap-2023.xsd#us-gaap_NetIncomeLoss"/>
    <link:loc xlink:label="loc_se" xlink:href="us-gaap-2023.xsd#us-gaap_StockholdersEquity"/>
    <link:presentationArc xlink:from="loc_roll" xlink:to="loc_cs" order="1"/>
    <link:presentationArc xlink:from="loc_roll" xlink:to="loc_ni" order="2"/>
    <link:presentationArc xlink:from="loc_roll" xlink:to="loc_se" order="3"/>
  </link:presentationLink>
  <link:calculationLink xlink:role="http://example.com/role/StatementsOfIncome">
    <link:loc xlink:label="loc_rev" xlink:href="us-gaap-2023.xsd#us-gaap_Revenues"/>
    <link:loc xlink:label="loc_ni" xlink:href="us-gaap-2023.xsd#us-gaap_NetIncomeLoss"/>
    <link:calculationArc xlink:from="loc_ni" xlink:to="loc_rev" weight="1.0"/>
  </link:calculationLink>
</link:linkbase>`

func mustFiling(t *testing.T) *Filing {
	t.Helper()
	instance, err := Normalize([]byte(testInstance))
	if err != nil {
		t.Fatalf("failed to normalize instance: %v", err)
	}
	linkbase, err := Normalize([]byte(testLinkbase))
	if err != nil {
		t.Fatalf("failed to normalize linkbase: %v", err)
	}
	filing, err := NewFiling("0000320193_test", instance, linkbase)
	if err != nil {
		t.Fatalf("failed to build filing: %v", err)
	}
	return filing
}
