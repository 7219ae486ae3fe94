package prompt

import "github.com/aviniti/ai-tools-api/pkg/textx"

type label struct {
	en string
	ar string
}

func (l label) in(lang textx.Lang) string {
	if lang == textx.LangArabic {
		return l.ar
	}
	return l.en
}

var backgroundLabels = map[string]label{
	"entrepreneur": {en: "Entrepreneur / Business Owner", ar: "رائد أعمال / صاحب عمل"},
	"professional": {en: "Professional / Employee", ar: "محترف / موظف"},
	"student":      {en: "Student / Academic", ar: "طالب / أكاديمي"},
	"creative":     {en: "Creative / Freelancer", ar: "مبدع / مستقل"},
	"other":        {en: "Other", ar: "أخرى"},
}

var industryLabels = map[string]label{
	"health-wellness":     {en: "Health and Wellness", ar: "الصحة والعافية"},
	"finance-banking":     {en: "Finance and Banking", ar: "المالية والبنوك"},
	"education-learning":  {en: "Education and Learning", ar: "التعليم والتعلم"},
	"ecommerce-retail":    {en: "E-commerce and Retail", ar: "التجارة الإلكترونية والتجزئة"},
	"logistics-delivery":  {en: "Logistics and Delivery", ar: "الخدمات اللوجستية والتوصيل"},
	"entertainment-media": {en: "Entertainment and Media", ar: "الترفيه والإعلام"},
	"travel-hospitality":  {en: "Travel and Hospitality", ar: "السفر والضيافة"},
	"real-estate":         {en: "Real Estate", ar: "العقارات"},
	"food-restaurant":     {en: "Food and Restaurant", ar: "الطعام والمطاعم"},
	"social-community":    {en: "Social and Community", ar: "التواصل الاجتماعي والمجتمع"},
	"other":               {en: "Other / Multiple", ar: "أخرى / متعددة"},
}

func backgroundLabel(id string, lang textx.Lang) string {
	if l, ok := backgroundLabels[id]; ok {
		return l.in(lang)
	}
	return id
}

func industryLabel(id string, lang textx.Lang) string {
	if l, ok := industryLabels[id]; ok {
		return l.in(lang)
	}
	return id
}

func languageDirective(lang textx.Lang) string {
	if lang == textx.LangArabic {
		return "Arabic"
	}
	return "English"
}
