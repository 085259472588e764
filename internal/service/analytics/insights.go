package analytics

import "github.com/Temutjin2k/ride-analytics/internal/domain/models"

// businessInsights returns a fresh copy of the strategy commentary page.
func businessInsights() models.Insights {
	return models.Insights{
		Title:  "Business Strategy & Operational Insights",
		Author: "Usha Nitwal",
		Sections: []models.InsightSection{
			{
				Title: "Peak Demand Optimization",
				Body: "Ride demand analysis indicates consistent time-based concentration patterns. " +
					"Identifying peak demand windows enables better driver allocation and supply balancing. " +
					"Peak demand typically aligns with:",
				Bullets: []string{"Office commute hours", "Weekend evenings", "High traffic or weather disruptions"},
				Callout: &models.Callout{
					Title: "Business Impact",
					Tone:  models.ToneInfo,
					Points: []string{
						"Reduced customer wait times",
						"Higher ride completion rates",
						"Improved driver utilization",
						"Revenue optimization during peak hours",
					},
				},
			},
			{
				Title: "Customer Behavior Intelligence",
				Body: "Customer behavior analysis highlights variation in ride frequency, vehicle preference, and payment methods. " +
					"Key segments identified:",
				Bullets: []string{"High-frequency riders", "Premium vehicle users", "Price-sensitive customers"},
				Callout: &models.Callout{
					Title: "Strategic Applications",
					Tone:  models.ToneSuccess,
					Points: []string{
						"Personalized promotions",
						"Loyalty programs",
						"Targeted notifications",
						"Retention-focused campaigns",
					},
				},
			},
			{
				Title: "Dynamic Pricing Effectiveness",
				Body: "Revenue trends suggest varying levels of customer sensitivity to pricing changes. " +
					"Dynamic pricing strategies must maintain a balance between revenue maximization and booking conversion rates. " +
					"Tracking booking value alongside ride volume helps evaluate pricing elasticity.",
				Callout: &models.Callout{
					Title: "Optimization Objectives",
					Tone:  models.ToneWarning,
					Points: []string{
						"Increase revenue per ride",
						"Maintain booking conversion rates",
						"Avoid demand suppression",
						"Improve pricing transparency",
					},
				},
			},
			{
				Title: "Operational Risk Monitoring",
				Body: "Irregular ride patterns may indicate operational inefficiencies or potential risk exposure. " +
					"Key indicators include:",
				Bullets: []string{"Cancellation spikes", "Abnormal ride distances", "Clusters of low ratings"},
				Callout: &models.Callout{
					Title: "Risk Mitigation Measures",
					Tone:  models.ToneError,
					Points: []string{
						"Automated anomaly detection",
						"Fraud monitoring systems",
						"Driver and customer risk scoring",
						"Real-time operational dashboards",
					},
				},
			},
		},
		Issues: []string{
			"High cancellation rate (primary operational risk)",
			"Driver availability constraints",
			"Heavy reliance on cash transactions",
			"Revenue leakage from cancelled bookings",
		},
		ActionPlan: []models.ActionItem{
			{Priority: "High", Action: "Reduce driver cancellations", ExpectedImpact: "Immediate revenue improvement"},
			{Priority: "High", Action: "Improve driver supply matching", ExpectedImpact: "Reduction in 'Driver Not Found' cases"},
			{Priority: "Medium", Action: "Increase UPI/Card adoption", ExpectedImpact: "Higher digital transaction penetration"},
			{Priority: "Low", Action: "Introduce loyalty program for high-value customers", ExpectedImpact: "Improved customer retention"},
		},
		Summary: models.InsightSection{
			Title: "Executive Summary",
			Body: "Overall ride demand and revenue performance remain stable. " +
				"However, approximately 38% of rides are cancelled, representing the most significant operational and financial challenge. " +
				"High cancellation levels impact revenue realization, customer experience, and platform efficiency. " +
				"Reducing cancellations and strengthening driver supply alignment can materially increase revenue without increasing customer acquisition costs. " +
				"Focused execution in these areas will enhance operational efficiency, improve customer satisfaction, and drive sustainable revenue growth.",
			Bullets: []string{
				"Improve ride completion rates",
				"Optimize driver allocation",
				"Accelerate digital payment adoption",
				"Strengthen customer retention initiatives",
			},
		},
	}
}
