// Package seed bundles the default datasets for every collection the
// dashboard tracks, plus the symptom keyword dictionary. It is a
// versioned constant: the store falls back to these values per-field
// when durable storage is absent or missing a key, and nothing mutates
// them — Defaults returns fresh copies.
package seed

import (
	"github.com/murarihealth/dashboard/internal/analyzer"
	"github.com/murarihealth/dashboard/internal/domain/health"
)

// Data is the full default aggregate.
type Data struct {
	LabResults     []health.LabResult
	LabTrends      []health.LabTrend
	Symptoms       []health.Symptom
	Appointments   []health.DoctorAppointment
	ClinicianNotes []health.ClinicianNote
	TimelineEvents []health.TimelineEvent
	HealthScore    health.HealthScore
	RiskFactors    []health.RiskFactor
	VitalSigns     []health.VitalSign
	Medications    []health.Medication
}

// Defaults returns a fresh copy of the bundled dataset.
func Defaults() Data {
	return Data{
		LabResults:     labResults(),
		LabTrends:      labTrends(),
		Symptoms:       symptoms(),
		Appointments:   appointments(),
		ClinicianNotes: clinicianNotes(),
		TimelineEvents: timelineEvents(),
		HealthScore:    healthScore(),
		RiskFactors:    riskFactors(),
		VitalSigns:     vitalSigns(),
		Medications:    medications(),
	}
}

// SymptomRules returns the keyword dictionary in its canonical order.
// Order is part of the contract: when matched keywords tie on urgency,
// the later rule wins the classification.
func SymptomRules() []analyzer.KeywordRule {
	return []analyzer.KeywordRule{
		{Keyword: "fatigue", Category: "Energy", BodySystem: "Endocrine/Metabolic", Urgency: 5, Specialties: []string{"Internal Medicine", "Endocrinology"}},
		{Keyword: "tired", Category: "Energy", BodySystem: "Endocrine/Metabolic", Urgency: 4, Specialties: []string{"Internal Medicine"}},
		{Keyword: "headache", Category: "Neurological", BodySystem: "Nervous System", Urgency: 5, Specialties: []string{"Neurology", "Internal Medicine"}},
		{Keyword: "migraine", Category: "Neurological", BodySystem: "Nervous System", Urgency: 7, Specialties: []string{"Neurology"}},
		{Keyword: "chest pain", Category: "Cardiovascular", BodySystem: "Cardiovascular", Urgency: 9, Specialties: []string{"Cardiology", "Emergency Medicine"}},
		{Keyword: "palpitations", Category: "Cardiovascular", BodySystem: "Cardiovascular", Urgency: 6, Specialties: []string{"Cardiology"}},
		{Keyword: "anxiety", Category: "Mental Health", BodySystem: "Nervous System", Urgency: 5, Specialties: []string{"Psychiatry", "Psychology"}},
		{Keyword: "depression", Category: "Mental Health", BodySystem: "Nervous System", Urgency: 7, Specialties: []string{"Psychiatry", "Psychology"}},
		{Keyword: "insomnia", Category: "Sleep", BodySystem: "Nervous System", Urgency: 6, Specialties: []string{"Sleep Medicine", "Psychiatry"}},
		{Keyword: "sleep", Category: "Sleep", BodySystem: "Nervous System", Urgency: 5, Specialties: []string{"Sleep Medicine"}},
		{Keyword: "bloating", Category: "Gastrointestinal", BodySystem: "Digestive", Urgency: 4, Specialties: []string{"Gastroenterology"}},
		{Keyword: "nausea", Category: "Gastrointestinal", BodySystem: "Digestive", Urgency: 5, Specialties: []string{"Gastroenterology"}},
		{Keyword: "pain", Category: "Pain", BodySystem: "Musculoskeletal", Urgency: 5, Specialties: []string{"Rheumatology", "Pain Management"}},
		{Keyword: "joint", Category: "Musculoskeletal", BodySystem: "Musculoskeletal", Urgency: 5, Specialties: []string{"Rheumatology", "Orthopedics"}},
		{Keyword: "stiff", Category: "Musculoskeletal", BodySystem: "Musculoskeletal", Urgency: 4, Specialties: []string{"Rheumatology"}},
		{Keyword: "brain fog", Category: "Cognitive", BodySystem: "Nervous System", Urgency: 5, Specialties: []string{"Neurology", "Internal Medicine"}},
		{Keyword: "dizzy", Category: "Neurological", BodySystem: "Nervous System", Urgency: 6, Specialties: []string{"Neurology", "ENT"}},
		{Keyword: "rash", Category: "Dermatological", BodySystem: "Integumentary", Urgency: 4, Specialties: []string{"Dermatology", "Allergy"}},
		{Keyword: "breathing", Category: "Respiratory", BodySystem: "Respiratory", Urgency: 7, Specialties: []string{"Pulmonology", "Emergency Medicine"}},
		{Keyword: "cough", Category: "Respiratory", BodySystem: "Respiratory", Urgency: 4, Specialties: []string{"Pulmonology", "Internal Medicine"}},
		{Keyword: "thirst", Category: "Endocrine", BodySystem: "Endocrine/Metabolic", Urgency: 5, Specialties: []string{"Endocrinology"}},
		{Keyword: "urination", Category: "Endocrine", BodySystem: "Renal/Endocrine", Urgency: 5, Specialties: []string{"Urology", "Endocrinology"}},
		{Keyword: "weight", Category: "Metabolic", BodySystem: "Endocrine/Metabolic", Urgency: 4, Specialties: []string{"Endocrinology", "Internal Medicine"}},
		{Keyword: "vision", Category: "Ophthalmologic", BodySystem: "Sensory", Urgency: 6, Specialties: []string{"Ophthalmology"}},
		{Keyword: "numbness", Category: "Neurological", BodySystem: "Nervous System", Urgency: 6, Specialties: []string{"Neurology"}},
		{Keyword: "tingling", Category: "Neurological", BodySystem: "Nervous System", Urgency: 5, Specialties: []string{"Neurology"}},
	}
}

func labResults() []health.LabResult {
	return []health.LabResult{
		// Complete blood count
		{ID: "l1", TestName: "WBC", Value: 6.8, Unit: "K/uL", NormalMin: 4.5, NormalMax: 11.0, Date: "2026-02-10", Category: "CBC", Flag: health.FlagNormal},
		{ID: "l2", TestName: "RBC", Value: 4.9, Unit: "M/uL", NormalMin: 4.5, NormalMax: 5.5, Date: "2026-02-10", Category: "CBC", Flag: health.FlagNormal},
		{ID: "l3", TestName: "Hemoglobin", Value: 14.2, Unit: "g/dL", NormalMin: 13.5, NormalMax: 17.5, Date: "2026-02-10", Category: "CBC", Flag: health.FlagNormal},
		{ID: "l4", TestName: "Hematocrit", Value: 42.1, Unit: "%", NormalMin: 38.3, NormalMax: 48.6, Date: "2026-02-10", Category: "CBC", Flag: health.FlagNormal},
		{ID: "l5", TestName: "Platelets", Value: 245, Unit: "K/uL", NormalMin: 150, NormalMax: 400, Date: "2026-02-10", Category: "CBC", Flag: health.FlagNormal},
		{ID: "l6", TestName: "MCV", Value: 86, Unit: "fL", NormalMin: 80, NormalMax: 100, Date: "2026-02-10", Category: "CBC", Flag: health.FlagNormal},
		{ID: "l7", TestName: "MCH", Value: 29.0, Unit: "pg", NormalMin: 27, NormalMax: 33, Date: "2026-02-10", Category: "CBC", Flag: health.FlagNormal},
		{ID: "l8", TestName: "MCHC", Value: 33.7, Unit: "g/dL", NormalMin: 32, NormalMax: 36, Date: "2026-02-10", Category: "CBC", Flag: health.FlagNormal},
		// Metabolic panel
		{ID: "l9", TestName: "Glucose (Fasting)", Value: 102, Unit: "mg/dL", NormalMin: 70, NormalMax: 100, Date: "2026-02-10", Category: "Metabolic", Flag: health.FlagHigh, Notes: "Slightly elevated — pre-diabetic range"},
		{ID: "l10", TestName: "HbA1c", Value: 5.8, Unit: "%", NormalMin: 4.0, NormalMax: 5.7, Date: "2026-02-10", Category: "Metabolic", Flag: health.FlagHigh, Notes: "Pre-diabetic range (5.7-6.4%)"},
		{ID: "l11", TestName: "BUN", Value: 16, Unit: "mg/dL", NormalMin: 7, NormalMax: 20, Date: "2026-02-10", Category: "Metabolic", Flag: health.FlagNormal},
		{ID: "l12", TestName: "Creatinine", Value: 1.0, Unit: "mg/dL", NormalMin: 0.7, NormalMax: 1.3, Date: "2026-02-10", Category: "Metabolic", Flag: health.FlagNormal},
		{ID: "l13", TestName: "eGFR", Value: 95, Unit: "mL/min", NormalMin: 90, NormalMax: 120, Date: "2026-02-10", Category: "Metabolic", Flag: health.FlagNormal},
		{ID: "l14", TestName: "Sodium", Value: 140, Unit: "mEq/L", NormalMin: 136, NormalMax: 145, Date: "2026-02-10", Category: "Metabolic", Flag: health.FlagNormal},
		{ID: "l15", TestName: "Potassium", Value: 4.2, Unit: "mEq/L", NormalMin: 3.5, NormalMax: 5.0, Date: "2026-02-10", Category: "Metabolic", Flag: health.FlagNormal},
		{ID: "l16", TestName: "Calcium", Value: 9.4, Unit: "mg/dL", NormalMin: 8.5, NormalMax: 10.5, Date: "2026-02-10", Category: "Metabolic", Flag: health.FlagNormal},
		{ID: "l17", TestName: "CO2", Value: 24, Unit: "mEq/L", NormalMin: 23, NormalMax: 29, Date: "2026-02-10", Category: "Metabolic", Flag: health.FlagNormal},
		{ID: "l18", TestName: "Chloride", Value: 101, Unit: "mEq/L", NormalMin: 98, NormalMax: 106, Date: "2026-02-10", Category: "Metabolic", Flag: health.FlagNormal},
		// Lipid panel
		{ID: "l19", TestName: "Total Cholesterol", Value: 218, Unit: "mg/dL", NormalMin: 0, NormalMax: 200, Date: "2026-02-10", Category: "Lipids", Flag: health.FlagHigh, Notes: "Borderline high"},
		{ID: "l20", TestName: "LDL Cholesterol", Value: 138, Unit: "mg/dL", NormalMin: 0, NormalMax: 130, Date: "2026-02-10", Category: "Lipids", Flag: health.FlagHigh, Notes: "Above optimal range"},
		{ID: "l21", TestName: "HDL Cholesterol", Value: 48, Unit: "mg/dL", NormalMin: 40, NormalMax: 60, Date: "2026-02-10", Category: "Lipids", Flag: health.FlagNormal},
		{ID: "l22", TestName: "Triglycerides", Value: 162, Unit: "mg/dL", NormalMin: 0, NormalMax: 150, Date: "2026-02-10", Category: "Lipids", Flag: health.FlagHigh, Notes: "Elevated"},
		{ID: "l23", TestName: "VLDL", Value: 32, Unit: "mg/dL", NormalMin: 5, NormalMax: 40, Date: "2026-02-10", Category: "Lipids", Flag: health.FlagNormal},
		{ID: "l24", TestName: "LDL/HDL Ratio", Value: 2.88, Unit: "ratio", NormalMin: 0, NormalMax: 3.0, Date: "2026-02-10", Category: "Lipids", Flag: health.FlagNormal},
		// Liver panel
		{ID: "l25", TestName: "ALT", Value: 28, Unit: "U/L", NormalMin: 7, NormalMax: 56, Date: "2026-02-10", Category: "Liver", Flag: health.FlagNormal},
		{ID: "l26", TestName: "AST", Value: 24, Unit: "U/L", NormalMin: 10, NormalMax: 40, Date: "2026-02-10", Category: "Liver", Flag: health.FlagNormal},
		{ID: "l27", TestName: "ALP", Value: 72, Unit: "U/L", NormalMin: 44, NormalMax: 147, Date: "2026-02-10", Category: "Liver", Flag: health.FlagNormal},
		{ID: "l28", TestName: "Bilirubin (Total)", Value: 0.9, Unit: "mg/dL", NormalMin: 0.1, NormalMax: 1.2, Date: "2026-02-10", Category: "Liver", Flag: health.FlagNormal},
		{ID: "l29", TestName: "Albumin", Value: 4.2, Unit: "g/dL", NormalMin: 3.4, NormalMax: 5.4, Date: "2026-02-10", Category: "Liver", Flag: health.FlagNormal},
		{ID: "l30", TestName: "Total Protein", Value: 7.1, Unit: "g/dL", NormalMin: 6.0, NormalMax: 8.3, Date: "2026-02-10", Category: "Liver", Flag: health.FlagNormal},
		// Thyroid
		{ID: "l31", TestName: "TSH", Value: 2.8, Unit: "mIU/L", NormalMin: 0.4, NormalMax: 4.0, Date: "2026-02-10", Category: "Thyroid", Flag: health.FlagNormal},
		{ID: "l32", TestName: "Free T4", Value: 1.2, Unit: "ng/dL", NormalMin: 0.8, NormalMax: 1.8, Date: "2026-02-10", Category: "Thyroid", Flag: health.FlagNormal},
		{ID: "l33", TestName: "Free T3", Value: 3.1, Unit: "pg/mL", NormalMin: 2.3, NormalMax: 4.2, Date: "2026-02-10", Category: "Thyroid", Flag: health.FlagNormal},
		// Vitamins and minerals
		{ID: "l34", TestName: "Vitamin D (25-OH)", Value: 28, Unit: "ng/mL", NormalMin: 30, NormalMax: 100, Date: "2026-02-10", Category: "Vitamins", Flag: health.FlagLow, Notes: "Insufficient — supplement recommended"},
		{ID: "l35", TestName: "Vitamin B12", Value: 480, Unit: "pg/mL", NormalMin: 200, NormalMax: 900, Date: "2026-02-10", Category: "Vitamins", Flag: health.FlagNormal},
		{ID: "l36", TestName: "Folate", Value: 14, Unit: "ng/mL", NormalMin: 2.7, NormalMax: 17, Date: "2026-02-10", Category: "Vitamins", Flag: health.FlagNormal},
		{ID: "l37", TestName: "Iron", Value: 85, Unit: "ug/dL", NormalMin: 60, NormalMax: 170, Date: "2026-02-10", Category: "Vitamins", Flag: health.FlagNormal},
		{ID: "l38", TestName: "Ferritin", Value: 120, Unit: "ng/mL", NormalMin: 20, NormalMax: 250, Date: "2026-02-10", Category: "Vitamins", Flag: health.FlagNormal},
		{ID: "l39", TestName: "Magnesium", Value: 1.9, Unit: "mg/dL", NormalMin: 1.7, NormalMax: 2.2, Date: "2026-02-10", Category: "Vitamins", Flag: health.FlagNormal},
		{ID: "l40", TestName: "Zinc", Value: 78, Unit: "ug/dL", NormalMin: 60, NormalMax: 120, Date: "2026-02-10", Category: "Vitamins", Flag: health.FlagNormal},
		// Inflammatory markers
		{ID: "l41", TestName: "CRP (hs)", Value: 2.4, Unit: "mg/L", NormalMin: 0, NormalMax: 1.0, Date: "2026-02-10", Category: "Inflammatory", Flag: health.FlagHigh, Notes: "Elevated — cardiovascular risk marker"},
		{ID: "l42", TestName: "ESR", Value: 12, Unit: "mm/hr", NormalMin: 0, NormalMax: 20, Date: "2026-02-10", Category: "Inflammatory", Flag: health.FlagNormal},
		{ID: "l43", TestName: "Homocysteine", Value: 11.2, Unit: "umol/L", NormalMin: 4, NormalMax: 15, Date: "2026-02-10", Category: "Inflammatory", Flag: health.FlagNormal},
		// Hormones
		{ID: "l44", TestName: "Testosterone (Total)", Value: 520, Unit: "ng/dL", NormalMin: 300, NormalMax: 1000, Date: "2026-02-10", Category: "Hormones", Flag: health.FlagNormal},
		{ID: "l45", TestName: "Cortisol (AM)", Value: 16, Unit: "ug/dL", NormalMin: 6, NormalMax: 23, Date: "2026-02-10", Category: "Hormones", Flag: health.FlagNormal},
		{ID: "l46", TestName: "DHEA-S", Value: 340, Unit: "ug/dL", NormalMin: 80, NormalMax: 560, Date: "2026-02-10", Category: "Hormones", Flag: health.FlagNormal},
		{ID: "l47", TestName: "Insulin (Fasting)", Value: 12, Unit: "uIU/mL", NormalMin: 2.6, NormalMax: 24.9, Date: "2026-02-10", Category: "Hormones", Flag: health.FlagNormal},
	}
}

func labTrends() []health.LabTrend {
	return []health.LabTrend{
		{TestName: "Glucose (Fasting)", Category: "Metabolic", Unit: "mg/dL", NormalMin: 70, NormalMax: 100, CurrentFlag: health.FlagHigh, PercentChange: 4.1, Trend: health.TrendWorsening,
			Data: []health.TrendPoint{{Date: "2025-02", Value: 88}, {Date: "2025-05", Value: 92}, {Date: "2025-08", Value: 96}, {Date: "2025-11", Value: 98}, {Date: "2026-02", Value: 102}}},
		{TestName: "HbA1c", Category: "Metabolic", Unit: "%", NormalMin: 4.0, NormalMax: 5.7, CurrentFlag: health.FlagHigh, PercentChange: 3.6, Trend: health.TrendWorsening,
			Data: []health.TrendPoint{{Date: "2025-02", Value: 5.3}, {Date: "2025-05", Value: 5.4}, {Date: "2025-08", Value: 5.5}, {Date: "2025-11", Value: 5.6}, {Date: "2026-02", Value: 5.8}}},
		{TestName: "Total Cholesterol", Category: "Lipids", Unit: "mg/dL", NormalMin: 0, NormalMax: 200, CurrentFlag: health.FlagHigh, PercentChange: 5.3, Trend: health.TrendWorsening,
			Data: []health.TrendPoint{{Date: "2025-02", Value: 195}, {Date: "2025-05", Value: 201}, {Date: "2025-08", Value: 208}, {Date: "2025-11", Value: 212}, {Date: "2026-02", Value: 218}}},
		{TestName: "LDL Cholesterol", Category: "Lipids", Unit: "mg/dL", NormalMin: 0, NormalMax: 130, CurrentFlag: health.FlagHigh, PercentChange: 7.0, Trend: health.TrendWorsening,
			Data: []health.TrendPoint{{Date: "2025-02", Value: 118}, {Date: "2025-05", Value: 124}, {Date: "2025-08", Value: 129}, {Date: "2025-11", Value: 133}, {Date: "2026-02", Value: 138}}},
		{TestName: "HDL Cholesterol", Category: "Lipids", Unit: "mg/dL", NormalMin: 40, NormalMax: 60, CurrentFlag: health.FlagNormal, PercentChange: -2.0, Trend: health.TrendStable,
			Data: []health.TrendPoint{{Date: "2025-02", Value: 52}, {Date: "2025-05", Value: 50}, {Date: "2025-08", Value: 49}, {Date: "2025-11", Value: 48}, {Date: "2026-02", Value: 48}}},
		{TestName: "Triglycerides", Category: "Lipids", Unit: "mg/dL", NormalMin: 0, NormalMax: 150, CurrentFlag: health.FlagHigh, PercentChange: 12.5, Trend: health.TrendWorsening,
			Data: []health.TrendPoint{{Date: "2025-02", Value: 128}, {Date: "2025-05", Value: 135}, {Date: "2025-08", Value: 142}, {Date: "2025-11", Value: 155}, {Date: "2026-02", Value: 162}}},
		{TestName: "Vitamin D", Category: "Vitamins", Unit: "ng/mL", NormalMin: 30, NormalMax: 100, CurrentFlag: health.FlagLow, PercentChange: -12.5, Trend: health.TrendWorsening,
			Data: []health.TrendPoint{{Date: "2025-02", Value: 35}, {Date: "2025-05", Value: 38}, {Date: "2025-08", Value: 34}, {Date: "2025-11", Value: 30}, {Date: "2026-02", Value: 28}}},
		{TestName: "CRP (hs)", Category: "Inflammatory", Unit: "mg/L", NormalMin: 0, NormalMax: 1.0, CurrentFlag: health.FlagHigh, PercentChange: 33.3, Trend: health.TrendWorsening,
			Data: []health.TrendPoint{{Date: "2025-02", Value: 1.2}, {Date: "2025-05", Value: 1.5}, {Date: "2025-08", Value: 1.8}, {Date: "2025-11", Value: 2.1}, {Date: "2026-02", Value: 2.4}}},
		{TestName: "TSH", Category: "Thyroid", Unit: "mIU/L", NormalMin: 0.4, NormalMax: 4.0, CurrentFlag: health.FlagNormal, PercentChange: 3.7, Trend: health.TrendStable,
			Data: []health.TrendPoint{{Date: "2025-02", Value: 2.5}, {Date: "2025-05", Value: 2.6}, {Date: "2025-08", Value: 2.7}, {Date: "2025-11", Value: 2.7}, {Date: "2026-02", Value: 2.8}}},
		{TestName: "Hemoglobin", Category: "CBC", Unit: "g/dL", NormalMin: 13.5, NormalMax: 17.5, CurrentFlag: health.FlagNormal, PercentChange: -0.7, Trend: health.TrendStable,
			Data: []health.TrendPoint{{Date: "2025-02", Value: 14.8}, {Date: "2025-05", Value: 14.5}, {Date: "2025-08", Value: 14.3}, {Date: "2025-11", Value: 14.3}, {Date: "2026-02", Value: 14.2}}},
		{TestName: "Creatinine", Category: "Metabolic", Unit: "mg/dL", NormalMin: 0.7, NormalMax: 1.3, CurrentFlag: health.FlagNormal, PercentChange: 0, Trend: health.TrendStable,
			Data: []health.TrendPoint{{Date: "2025-02", Value: 1.0}, {Date: "2025-05", Value: 1.0}, {Date: "2025-08", Value: 1.0}, {Date: "2025-11", Value: 1.0}, {Date: "2026-02", Value: 1.0}}},
		{TestName: "Testosterone (Total)", Category: "Hormones", Unit: "ng/dL", NormalMin: 300, NormalMax: 1000, CurrentFlag: health.FlagNormal, PercentChange: -3.7, Trend: health.TrendStable,
			Data: []health.TrendPoint{{Date: "2025-02", Value: 560}, {Date: "2025-05", Value: 548}, {Date: "2025-08", Value: 535}, {Date: "2025-11", Value: 528}, {Date: "2026-02", Value: 520}}},
	}
}

func symptoms() []health.Symptom {
	return []health.Symptom{
		{ID: "s1", Text: "Feeling fatigued in the afternoon, especially after lunch. Energy crashes around 2-3pm.", Severity: 6, Category: "Energy", BodySystem: "Endocrine/Metabolic", Date: "2026-02-14", Tags: []string{"fatigue", "energy", "afternoon crash", "postprandial"}, Sentiment: -0.6, Duration: "2-3 hours", Frequency: "Daily"},
		{ID: "s2", Text: "Mild headache on the right temple, comes and goes. Seems worse when dehydrated.", Severity: 4, Category: "Neurological", BodySystem: "Nervous System", Date: "2026-02-13", Tags: []string{"headache", "tension", "dehydration"}, Sentiment: -0.4, Duration: "1-2 hours", Frequency: "3x/week"},
		{ID: "s3", Text: "Joint stiffness in knees when waking up, takes about 20 minutes to loosen up.", Severity: 5, Category: "Musculoskeletal", BodySystem: "Musculoskeletal", Date: "2026-02-12", Tags: []string{"joint stiffness", "morning", "knee"}, Sentiment: -0.5, Duration: "20 minutes", Frequency: "Daily"},
		{ID: "s4", Text: "Sleep quality has been poor. Waking up 2-3 times during the night. Not feeling rested.", Severity: 7, Category: "Sleep", BodySystem: "Nervous System", Date: "2026-02-11", Tags: []string{"insomnia", "sleep disruption", "fatigue"}, Sentiment: -0.7, Duration: "All night", Frequency: "Most nights"},
		{ID: "s5", Text: "Occasional heart palpitations, usually when stressed or after coffee.", Severity: 5, Category: "Cardiovascular", BodySystem: "Cardiovascular", Date: "2026-02-10", Tags: []string{"palpitations", "stress", "caffeine"}, Sentiment: -0.5, Duration: "Few seconds", Frequency: "2-3x/week"},
		{ID: "s6", Text: "Dry eyes, especially when working on computer. Using eye drops frequently.", Severity: 3, Category: "Ophthalmologic", BodySystem: "Sensory", Date: "2026-02-09", Tags: []string{"dry eyes", "screen time", "eye strain"}, Sentiment: -0.3, Duration: "Throughout day", Frequency: "Daily"},
		{ID: "s7", Text: "Brain fog and difficulty concentrating during work. Hard to focus on complex tasks.", Severity: 6, Category: "Cognitive", BodySystem: "Nervous System", Date: "2026-02-08", Tags: []string{"brain fog", "concentration", "cognitive"}, Sentiment: -0.6, Duration: "3-4 hours", Frequency: "Most days"},
		{ID: "s8", Text: "Mild anxiety before meetings and social situations. Tightness in chest.", Severity: 5, Category: "Mental Health", BodySystem: "Nervous System", Date: "2026-02-07", Tags: []string{"anxiety", "social", "chest tightness"}, Sentiment: -0.5, Duration: "30-60 min", Frequency: "Several times/week"},
		{ID: "s9", Text: "Digestive discomfort after eating, bloating and gas. Worse with dairy and gluten.", Severity: 5, Category: "Gastrointestinal", BodySystem: "Digestive", Date: "2026-02-06", Tags: []string{"bloating", "gas", "dairy", "gluten", "food sensitivity"}, Sentiment: -0.5, Duration: "2-3 hours", Frequency: "After most meals"},
		{ID: "s10", Text: "Occasional lower back pain when sitting for long periods. Improves with stretching.", Severity: 4, Category: "Musculoskeletal", BodySystem: "Musculoskeletal", Date: "2026-02-05", Tags: []string{"back pain", "sedentary", "posture"}, Sentiment: -0.4, Duration: "Variable", Frequency: "Most work days"},
		{ID: "s11", Text: "Feeling generally good today, good energy and mood. Slept 7.5 hours.", Severity: 1, Category: "General", BodySystem: "General", Date: "2026-02-04", Tags: []string{"well-being", "good energy", "positive"}, Sentiment: 0.8, Duration: "All day", Frequency: "Occasional"},
		{ID: "s12", Text: "Increased thirst and frequent urination. Drinking more water than usual.", Severity: 4, Category: "Endocrine", BodySystem: "Endocrine/Metabolic", Date: "2026-02-03", Tags: []string{"polydipsia", "polyuria", "metabolic"}, Sentiment: -0.4, Duration: "All day", Frequency: "3-4 days/week"},
	}
}

func appointments() []health.DoctorAppointment {
	return []health.DoctorAppointment{
		{ID: "a1", Doctor: "Dr. Sarah Chen", Specialty: "Internal Medicine / PCP", Date: "2026-02-20", Time: "10:00 AM", Location: "NYC Medical Associates, 450 Park Ave", Reason: "Annual Physical + Lab Review", Status: health.StatusScheduled, Priority: health.PriorityRoutine, Notes: "Bring recent lab results. Discuss pre-diabetic markers and lipid panel."},
		{ID: "a2", Doctor: "Dr. Michael Torres", Specialty: "Endocrinology", Date: "2026-02-25", Time: "2:30 PM", Location: "NYU Langone Endocrine Center", Reason: "Metabolic Assessment - Glucose/HbA1c Trending Up", Status: health.StatusScheduled, Priority: health.PriorityUrgent, Notes: "Specialist referral from PCP. Elevated fasting glucose trend. Bring CGM data if available."},
		{ID: "a3", Doctor: "Dr. Lisa Park", Specialty: "Cardiology", Date: "2026-03-05", Time: "11:00 AM", Location: "Mount Sinai Heart, 1 Gustave Levy Pl", Reason: "Cardiovascular Risk Assessment - Elevated CRP & Lipids", Status: health.StatusScheduled, Priority: health.PriorityUrgent, Notes: "hs-CRP trending up. LDL elevated. Need assessment for statin therapy and lifestyle intervention."},
		{ID: "a4", Doctor: "Dr. James Kim", Specialty: "Dermatology", Date: "2026-03-10", Time: "9:00 AM", Location: "Dermatology Associates NYC", Reason: "Annual Skin Check", Status: health.StatusScheduled, Priority: health.PriorityRoutine},
		{ID: "a5", Doctor: "Dr. Anna Volkov", Specialty: "Ophthalmology", Date: "2026-03-15", Time: "3:00 PM", Location: "NYC Eye Care, 321 E 42nd St", Reason: "Eye Exam - Dry Eyes & Screen Strain", Status: health.StatusScheduled, Priority: health.PriorityRoutine, Notes: "Chronic dry eye symptoms. Excessive screen time. Consider prescription eye drops."},
		{ID: "a6", Doctor: "Dr. Robert Harris", Specialty: "Gastroenterology", Date: "2026-03-20", Time: "1:00 PM", Location: "GI Associates of Manhattan", Reason: "Digestive Issues - Bloating & Food Sensitivities", Status: health.StatusScheduled, Priority: health.PriorityRoutine, Notes: "Chronic bloating, possible dairy/gluten sensitivity. Discuss H. pylori test, food allergy panel."},
		{ID: "a7", Doctor: "Dr. Emily Nguyen", Specialty: "Rheumatology", Date: "2026-03-25", Time: "10:30 AM", Location: "HSS - Hospital for Special Surgery", Reason: "Joint Stiffness Evaluation", Status: health.StatusScheduled, Priority: health.PriorityRoutine, Notes: "Morning knee stiffness. Rule out early inflammatory arthritis. ANA panel pending."},
		{ID: "a8", Doctor: "Dr. David Patel", Specialty: "Psychiatry", Date: "2026-02-28", Time: "4:00 PM", Location: "Mindful Health NYC", Reason: "Anxiety & Sleep Assessment", Status: health.StatusScheduled, Priority: health.PriorityUrgent, Notes: "Sleep disruption, anxiety episodes, brain fog. Evaluate for GAD. CBT referral."},
		{ID: "a9", Doctor: "Dr. Sarah Chen", Specialty: "Internal Medicine / PCP", Date: "2025-11-15", Time: "10:00 AM", Location: "NYC Medical Associates, 450 Park Ave", Reason: "Follow-up - Lab Review", Status: health.StatusCompleted, Priority: health.PriorityRoutine, Notes: "Labs mostly normal. Glucose slightly trending up. Recheck in 3 months."},
		{ID: "a10", Doctor: "Dr. Sarah Chen", Specialty: "Internal Medicine / PCP", Date: "2025-08-20", Time: "10:00 AM", Location: "NYC Medical Associates, 450 Park Ave", Reason: "Annual Physical", Status: health.StatusCompleted, Priority: health.PriorityRoutine, Notes: "Overall healthy. Vitamin D low, started supplementation. Lipids borderline."},
	}
}

func clinicianNotes() []health.ClinicianNote {
	return []health.ClinicianNote{
		{
			ID: "cn1", Clinician: "Dr. Sarah Chen", Specialty: "Internal Medicine", Date: "2025-11-15",
			Subjective: "Patient reports intermittent fatigue, particularly post-prandial. Sleep quality declining. Notes occasional afternoon energy crashes. Denies chest pain, SOB. Reports mild joint stiffness in AM.",
			Objective:  "VS: BP 128/82, HR 72, RR 16, Temp 98.4°F, BMI 25.8. HEENT normal. Heart RRR, no murmurs. Lungs CTA bilaterally. Abdomen soft, NT. Extremities no edema. MSK: mild crepitus bilateral knees.",
			Assessment: "1. Pre-diabetes: Fasting glucose 98, HbA1c 5.6 — trending upward.\n2. Dyslipidemia: Total cholesterol 212, LDL 133 — borderline high.\n3. Vitamin D insufficiency: 30 ng/mL.\n4. Fatigue: Likely multifactorial — metabolic, sleep quality, possible subclinical inflammation.\n5. Knee stiffness: Early degenerative vs. inflammatory — monitor.",
			Plan:       "1. Recheck metabolic panel and HbA1c in 3 months.\n2. Lifestyle modifications: Mediterranean diet, reduce refined carbs.\n3. Continue Vitamin D 2000 IU daily.\n4. Consider endocrinology referral if glucose continues to trend.\n5. Sleep hygiene counseling provided.\n6. Cardiology referral for lipid management if no improvement.\n7. Return in 3 months for follow-up.",
			Diagnoses:  []string{"Pre-diabetes (E11.65)", "Dyslipidemia (E78.5)", "Vitamin D deficiency (E55.9)", "Fatigue (R53.83)"},
			Medications: []string{"Vitamin D3 2000 IU daily", "Fish Oil 1000mg daily"}, FollowUpDate: "2026-02-20",
		},
		{
			ID: "cn2", Clinician: "Dr. Sarah Chen", Specialty: "Internal Medicine", Date: "2025-08-20",
			Subjective: "Patient presents for annual physical. Generally feels well. Reports mild fatigue. Diet has been inconsistent. Exercise 2-3x/week. Denies significant complaints.",
			Objective:  "VS: BP 124/78, HR 68, RR 14, Temp 98.6°F, BMI 25.2. Physical exam unremarkable. Labs reviewed — see attached.",
			Assessment: "1. Overweight: BMI 25.2, borderline.\n2. Vitamin D deficiency: 22 ng/mL.\n3. Lipids: Borderline — Total cholesterol 201, LDL 124.\n4. Glucose: Normal but at upper end (92).\n5. Otherwise healthy male.",
			Plan:       "1. Start Vitamin D3 2000 IU daily.\n2. Dietary counseling — increase vegetables, lean protein.\n3. Exercise goal: 150 min/week moderate intensity.\n4. Recheck labs in 3 months.\n5. Annual flu vaccine administered.",
			Diagnoses:  []string{"Vitamin D deficiency (E55.9)", "Overweight (E66.3)"},
			Medications: []string{"Vitamin D3 2000 IU daily"}, FollowUpDate: "2025-11-15",
		},
	}
}

func timelineEvents() []health.TimelineEvent {
	return []health.TimelineEvent{
		{ID: "t1", Type: "lab", Title: "Comprehensive Lab Panel", Description: "Full labs drawn — CBC, CMP, Lipids, Thyroid, Vitamins, Hormones, Inflammatory markers", Date: "2026-02-10", Severity: "warning", Details: map[string]string{"flaggedTests": "6", "totalTests": "47"}},
		{ID: "t2", Type: "symptom", Title: "Afternoon Energy Crash", Description: "Persistent fatigue pattern — post-prandial energy crashes", Date: "2026-02-14", Severity: "warning"},
		{ID: "t3", Type: "symptom", Title: "Sleep Disruption", Description: "Waking 2-3x per night, poor sleep quality", Date: "2026-02-11", Severity: "danger"},
		{ID: "t4", Type: "appointment", Title: "PCP Visit Scheduled", Description: "Dr. Chen — Annual Physical + Lab Review", Date: "2026-02-20", Severity: "info"},
		{ID: "t5", Type: "appointment", Title: "Endocrinology Referral", Description: "Dr. Torres — Metabolic assessment for glucose trend", Date: "2026-02-25", Severity: "warning"},
		{ID: "t6", Type: "appointment", Title: "Cardiology Consult", Description: "Dr. Park — CV risk, CRP elevation, lipid management", Date: "2026-03-05", Severity: "warning"},
		{ID: "t7", Type: "note", Title: "PCP Follow-up Note", Description: "Dr. Chen reviewed labs. Pre-diabetic markers noted. Endocrine referral placed.", Date: "2025-11-15", Severity: "warning"},
		{ID: "t8", Type: "medication", Title: "Started Vitamin D3", Description: "2000 IU daily — for Vitamin D insufficiency", Date: "2025-08-20", Severity: "info"},
		{ID: "t9", Type: "medication", Title: "Started Fish Oil", Description: "1000mg daily — for lipid support", Date: "2025-11-15", Severity: "info"},
		{ID: "t10", Type: "lab", Title: "Previous Lab Panel", Description: "Labs showed Vitamin D deficiency, borderline lipids, glucose trending", Date: "2025-11-15", Severity: "warning"},
		{ID: "t11", Type: "milestone", Title: "Annual Physical", Description: "Full physical exam. Started Vitamin D supplementation.", Date: "2025-08-20", Severity: "normal"},
		{ID: "t12", Type: "symptom", Title: "Digestive Issues Onset", Description: "Bloating and gas becoming more frequent, especially with dairy", Date: "2026-02-06", Severity: "warning"},
		{ID: "t13", Type: "appointment", Title: "Psychiatry Consult", Description: "Dr. Patel — anxiety & sleep assessment", Date: "2026-02-28", Severity: "warning"},
		{ID: "t14", Type: "symptom", Title: "Brain Fog Episodes", Description: "Difficulty concentrating on complex tasks, cognitive fatigue", Date: "2026-02-08", Severity: "warning"},
	}
}

func healthScore() health.HealthScore {
	return health.HealthScore{
		Overall:        72,
		Cardiovascular: 65,
		Metabolic:      58,
		Immune:         78,
		Endocrine:      70,
		Hepatic:        92,
		Renal:          95,
		Hematologic:    88,
		Nutritional:    68,
		Mental:         62,
	}
}

func riskFactors() []health.RiskFactor {
	return []health.RiskFactor{
		{
			Name: "Type 2 Diabetes Risk", Category: "Metabolic", Risk: "moderate", Score: 45,
			Description:     "Fasting glucose and HbA1c are trending upward into pre-diabetic range. Insulin resistance may be developing.",
			Recommendations: []string{"Reduce refined carbohydrate intake", "Increase physical activity to 150+ min/week", "Mediterranean diet adoption", "Consider CGM monitoring", "Endocrinology follow-up Feb 25"},
			RelatedLabs:     []string{"Glucose (Fasting)", "HbA1c", "Insulin (Fasting)"},
		},
		{
			Name: "Cardiovascular Disease Risk", Category: "Cardiovascular", Risk: "moderate", Score: 42,
			Description:     "Elevated LDL, triglycerides, and hs-CRP indicate increased cardiovascular risk. HDL is adequate but could be higher.",
			Recommendations: []string{"Increase omega-3 fatty acids", "Regular aerobic exercise", "Consider statin therapy evaluation", "Reduce saturated fat intake", "Cardiology consult Mar 5"},
			RelatedLabs:     []string{"Total Cholesterol", "LDL Cholesterol", "HDL Cholesterol", "Triglycerides", "CRP (hs)"},
		},
		{
			Name: "Chronic Inflammation", Category: "Inflammatory", Risk: "moderate", Score: 38,
			Description:     "hs-CRP is elevated at 2.4 mg/L, indicating systemic low-grade inflammation. This can drive multiple disease processes.",
			Recommendations: []string{"Anti-inflammatory diet (turmeric, omega-3, berries)", "Stress reduction techniques", "Improve sleep quality", "Rule out autoimmune causes", "Exercise regularly"},
			RelatedLabs:     []string{"CRP (hs)", "ESR", "Homocysteine"},
		},
		{
			Name: "Sleep Disorder Risk", Category: "Mental Health", Risk: "high", Score: 55,
			Description:     "Frequent nighttime awakenings, poor sleep quality, and daytime fatigue suggest possible sleep disorder.",
			Recommendations: []string{"Sleep study evaluation", "Sleep hygiene optimization", "Limit caffeine after 12pm", "Blue light blocking glasses", "Psychiatry consult Feb 28"},
			RelatedLabs:     []string{"Cortisol (AM)", "TSH"},
		},
		{
			Name: "Nutritional Deficiency Risk", Category: "Nutritional", Risk: "low", Score: 25,
			Description:     "Vitamin D is below optimal despite supplementation. Other nutritional markers are within range.",
			Recommendations: []string{"Increase Vitamin D dose to 4000 IU", "Sun exposure 15 min daily", "Recheck levels in 6 weeks", "Consider Vitamin D + K2 combination"},
			RelatedLabs:     []string{"Vitamin D (25-OH)", "B12", "Folate", "Iron", "Ferritin"},
		},
		{
			Name: "Anxiety / Mental Health Risk", Category: "Mental Health", Risk: "moderate", Score: 40,
			Description:     "Reports anxiety symptoms, brain fog, and cognitive difficulties. May be related to sleep disruption and metabolic factors.",
			Recommendations: []string{"CBT therapy referral", "Mindfulness meditation practice", "Regular exercise for mental health", "Consider SSRI evaluation", "Reduce caffeine intake"},
			RelatedLabs:     []string{"Cortisol (AM)", "TSH", "Testosterone (Total)"},
		},
	}
}

func vitalSigns() []health.VitalSign {
	return []health.VitalSign{
		{Type: "Blood Pressure (Systolic)", Value: 128, Unit: "mmHg", Date: "2026-02-10", Status: "elevated"},
		{Type: "Blood Pressure (Diastolic)", Value: 82, Unit: "mmHg", Date: "2026-02-10", Status: "normal"},
		{Type: "Heart Rate", Value: 72, Unit: "bpm", Date: "2026-02-10", Status: "normal"},
		{Type: "Temperature", Value: 98.4, Unit: "°F", Date: "2026-02-10", Status: "normal"},
		{Type: "Respiratory Rate", Value: 16, Unit: "breaths/min", Date: "2026-02-10", Status: "normal"},
		{Type: "BMI", Value: 25.8, Unit: "kg/m²", Date: "2026-02-10", Status: "elevated"},
		{Type: "Weight", Value: 178, Unit: "lbs", Date: "2026-02-10", Status: "normal"},
		{Type: "SpO2", Value: 98, Unit: "%", Date: "2026-02-10", Status: "normal"},
	}
}

func medications() []health.Medication {
	return []health.Medication{
		{ID: "m1", Name: "Vitamin D3", Dosage: "2000 IU", Frequency: "Daily", Prescriber: "Dr. Sarah Chen", StartDate: "2025-08-20", Status: health.MedicationActive, RenewalDate: "2026-08-20"},
		{ID: "m2", Name: "Fish Oil (Omega-3)", Dosage: "1000mg", Frequency: "Daily", Prescriber: "Dr. Sarah Chen", StartDate: "2025-11-15", Status: health.MedicationActive, RenewalDate: "2026-11-15"},
	}
}
