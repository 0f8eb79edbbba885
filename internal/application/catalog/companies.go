package catalog

import "github.com/logistics-net-api/internal/domain"

var builtin = []entry{
	{"Blue Dart", domain.Company{Domain: "bluedart.com", Hub: "Nagpur", BhopalAddress: "Zone II, MP Nagar", CareNumber: "1860-233-1234", Safety: 4.9, Speed: 9.5, Cost: 7.0, Reviews: 4.8}},
	{"Delhivery", domain.Company{Domain: "delhivery.com", Hub: "Indore", BhopalAddress: "Arera Colony", CareNumber: "1800-103-6354", Safety: 4.5, Speed: 8.0, Cost: 9.0, Reviews: 4.6}},
	{"DTDC", domain.Company{Domain: "dtdc.in", Hub: "Indore", BhopalAddress: "New Market", CareNumber: "1860-204-2222", Safety: 4.2, Speed: 7.5, Cost: 9.2, Reviews: 4.8}},
	{"FedEx", domain.Company{Domain: "fedex.com", Hub: "Mumbai", BhopalAddress: "Hoshangabad Road", CareNumber: "1800-209-6161", Safety: 4.8, Speed: 9.2, Cost: 6.5, Reviews: 4.7}},
	{"Gati", domain.Company{Domain: "gati.com", Hub: "Nagpur", BhopalAddress: "Transport Nagar", CareNumber: "1860-123-4284", Safety: 4.4, Speed: 7.8, Cost: 8.8, Reviews: 4.2}},
	{"Safexpress", domain.Company{Domain: "safexpress.com", Hub: "Nagpur", BhopalAddress: "Bairagarh", CareNumber: "1800-113-113", Safety: 4.7, Speed: 8.2, Cost: 8.5, Reviews: 4.5}},
	{"LogisticStartup", domain.Company{Domain: "example.com", Hub: "Pune", BhopalAddress: "123 Innovation Road, Bhopal", CareNumber: "98765-43210", Safety: 5.0, Speed: 8.8, Cost: 9.5, Reviews: 5.0}},
	{"TCI Express", domain.Company{Domain: "tciexpress.in", Hub: "Nagpur", BhopalAddress: "Govindpura Industrial Area", CareNumber: "1800-200-0977", Safety: 4.6, Speed: 8.0, Cost: 8.6, Reviews: 4.7}},
}
