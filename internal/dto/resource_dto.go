package dto

// ResourceUsage reports combined usage of one resource; zero-usage resources
// are still listed with popularity 0.
type ResourceUsage struct {
	ResourceID    string `json:"resource_id"`
	Title         string `json:"title"`
	Type          string `json:"type"`
	Views         int    `json:"views"`
	Downloads     int    `json:"downloads"`
	StudentsCount int    `json:"students_count"`
	Popularity    int    `json:"popularity"`
}

// ResourceUsageReport covers utilization and Pareto concentration of course
// resources.
type ResourceUsageReport struct {
	ReportMeta
	TotalResources       int             `json:"total_resources"`
	UsedResources        int             `json:"used_resources"`
	ZeroViewCount        int             `json:"zero_view_count"`
	UtilizationRate      float64         `json:"utilization_rate"`
	TopShareCount        int             `json:"top_share_count"`
	TrafficConcentration float64         `json:"traffic_concentration"`
	ConcentrationLevel   string          `json:"concentration_level"`
	ResourceUsage        []ResourceUsage `json:"resource_usage"`
	AnalysisText         string          `json:"analysis_text"`
}
