package validate

// Complete, rule-clean value sets for every built-in document type. Each
// fixture passes validation with zero errors and zero warnings, so tests can
// perturb a single field and assert on exactly the violation they caused.

import "github.com/qanoonsoft/docwizard/pkg/schema"

func validFixtures() map[schema.DocumentType]map[string]string {
	return map[schema.DocumentType]map[string]string{
		schema.EmploymentTermination: {
			"employerName":        "Gulf Horizon Trading LLC",
			"employerAddress":     "Office 1204, Al Maktoum Road, Deira, Dubai",
			"employeeName":        "Ahmed Al Rashidi",
			"employeeId":          "784-1985-7654321-2",
			"employeePosition":    "Logistics Manager",
			"joinDate":            "2020-01-15",
			"noticeDate":          "2025-01-01",
			"terminationDate":     "2025-02-28",
			"lastWorkingDay":      "2025-02-28",
			"noticePeriod":        "60",
			"terminationReason":   "Redundancy",
			"gratuityAmount":      "42000",
			"finalSettlementDate": "2025-03-05",
			"propertyToReturn":    "No",
			"hrContactName":       "Mariam Said",
		},
		schema.EmploymentContract: {
			"employerName":        "Falcon Engineering FZE",
			"employerAddress":     "Plot 12, Jebel Ali Free Zone, Dubai",
			"employerLicenseNo":   "CN-1234567",
			"hrContactName":       "Sara Haddad",
			"hrEmail":             "hr@falconeng.ae",
			"employeeName":        "Omar Khalil",
			"employeeNationality": "Jordanian",
			"employeeId":          "784-1985-7654321-2",
			"employeePhone":       "+971 52 987 6543",
			"position":            "Senior Accountant",
			"contractType":        "Unlimited",
			"startDate":           "2025-06-01",
			"probationPeriod":     "90",
			"basicSalary":         "10000",
			"totalSalary":         "15000",
			"workingDays":         "5",
			"restDays":            "2",
			"workingHours":        "8",
			"annualLeave":         "30",
			"noticePeriod":        "60",
		},
		schema.DemandLetter: {
			"senderName":       "Al Noor Furnishings LLC",
			"senderAddress":    "Industrial Area 4, Sharjah",
			"senderEmail":      "finance@alnoor.ae",
			"recipientName":    "Desert Rose Interiors",
			"recipientAddress": "Al Quoz 3, Dubai",
			"issueDate":        "2025-04-01",
			"debtDescription":  "Unpaid invoices 2024-118 and 2024-131 for delivered office furniture",
			"amount":           "50000",
			"dueDate":          "2025-03-01",
			"demandDeadline":   "2025-04-15",
			"paymentMethod":    "Cheque",
			"cashAllowed":      "No",
		},
		schema.SettlementAgreement: {
			"partyOneName":         "Khalid Al Suwaidi",
			"partyOneId":           "784-1975-3333333-3",
			"partyOneAddress":      "Villa 8, Al Barsha 2, Dubai",
			"partyTwoName":         "Blue Coast Contracting LLC",
			"partyTwoId":           "784-1990-1234567-1",
			"partyTwoAddress":      "Office 310, Hamdan Street, Abu Dhabi",
			"disputeDescription":   "Delayed completion of villa renovation works under contract BC-2024-07",
			"settlementAmount":     "80000",
			"paymentMethod":        "Cheque",
			"signingDate":          "2025-05-01",
			"paymentDeadline":      "2025-05-20",
			"governingEmirate":     "Dubai",
			"requiresNotarization": "No",
		},
		schema.LeaseAgreement: {
			"landlordName":     "Hessa Al Falasi",
			"landlordId":       "784-1970-1111111-1",
			"landlordPhone":    "+971 50 111 2222",
			"tenantName":       "Daniel Okafor",
			"tenantId":         "784-1988-2222222-2",
			"tenantPhone":      "+971 55 333 4444",
			"propertyAddress":  "Apartment 1506, Marina Heights Tower, Dubai Marina",
			"propertyType":     "Apartment",
			"annualRent":       "85000",
			"securityDeposit":  "5000",
			"paymentCheques":   "4",
			"leaseStartDate":   "2025-07-01",
			"leaseEndDate":     "2026-06-30",
			"leaseDuration":    "12",
			"furnishingStatus": "Unfurnished",
		},
		schema.LeaseTermination: {
			"landlordName":      "Hessa Al Falasi",
			"tenantName":        "Daniel Okafor",
			"propertyAddress":   "Apartment 1506, Marina Heights Tower, Dubai Marina",
			"leaseStartDate":    "2024-07-01",
			"leaseEndDate":      "2025-06-30",
			"noticeDate":        "2025-03-01",
			"terminationDate":   "2025-06-30",
			"terminationReason": "End of Term",
			"depositRefund":     "No",
			"handoverDate":      "2025-07-05",
			"noticePeriod":      "120",
		},
		schema.NDA: {
			"disclosingParty":        "Pearl Analytics DMCC",
			"disclosingPartyAddress": "Unit 2204, JBC 5, Jumeirah Lakes Towers, Dubai",
			"receivingParty":         "Nadia Rahman",
			"receivingPartyAddress":  "Flat 902, Corniche Residence, Abu Dhabi",
			"contactEmail":           "legal@pearlanalytics.ae",
			"mutual":                 "Yes",
			"purposeDescription":     "Evaluation of a proposed data engineering engagement",
			"confidentialScope":      "Client datasets, pricing models, and internal tooling",
			"effectiveDate":          "2025-02-01",
			"expiryDate":             "2028-02-01",
			"termYears":              "3",
			"governingEmirate":       "Dubai",
		},
		schema.PowerOfAttorney: {
			"principalName":        "Mohammed Al Shamsi",
			"principalId":          "784-1975-3333333-3",
			"principalAddress":     "Villa 21, Al Mushrif, Abu Dhabi",
			"principalPhone":       "+971 50 765 4321",
			"attorneyName":         "Yousef Al Shamsi",
			"attorneyId":           "784-1982-4444444-4",
			"attorneyAddress":      "Apartment 407, Khalifa City, Abu Dhabi",
			"poaType":              "General",
			"scopeOfAuthority":     "Manage and lease the principal's residential properties in Abu Dhabi",
			"effectiveDate":        "2025-03-01",
			"requiresNotarization": "No",
		},
		schema.WorkplaceComplaint: {
			"complainantName":   "Priya Nair",
			"complainantId":     "784-1992-5555555-5",
			"complainantEmail":  "priya.nair@mail.com",
			"employerName":      "Crystal Facilities Management",
			"respondentName":    "Site Supervisor, Zone B",
			"incidentDate":      "2025-04-10",
			"filingDate":        "2025-04-20",
			"complaintCategory": "Unpaid Wages",
			"complaintDetails":  "Overtime hours for March 2025 were excluded from the salary transfer",
			"desiredOutcome":    "Payment of the outstanding overtime and corrected payslips",
			"previousComplaint": "No",
		},
		schema.LegalLetter: {
			"senderName":       "Haddad & Partners Advocates",
			"senderAddress":    "Level 14, Burj Daman, DIFC, Dubai",
			"senderEmail":      "office@haddadpartners.ae",
			"recipientName":    "Apex Global Shipping LLC",
			"recipientAddress": "Warehouse 9, Dubai Investment Park 2",
			"subject":          "Outstanding demurrage charges under bill of lading APX-5521",
			"letterBody":       "We write on behalf of our client to request settlement of the outstanding charges within fourteen days.",
			"letterDate":       "2025-05-02",
			"deliveryMethod":   "Courier",
		},
	}
}
