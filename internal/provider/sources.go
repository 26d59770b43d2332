package provider

import (
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/careervision/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

var linkedInSpec = liveSpec{
	source: model.SourceLinkedIn,
	kind:   model.RecommendationJob,
	path:   "/jobSearch",
	params: func(p Profile, _ string) map[string]string {
		return map[string]string{"keywords": keywords(p), "count": "25"}
	},
	auth:  bearer,
	items: "elements",
	mapper: func(item gjson.Result) Candidate {
		url := item.Get("applyUrl").String()
		if url == "" {
			url = item.Get("jobPostingUrl").String()
		}
		return Candidate{
			ID:           item.Get("id").String(),
			Title:        item.Get("title").String(),
			Company:      item.Get("companyName").String(),
			Location:     item.Get("formattedLocation").String(),
			Description:  item.Get("description.text").String(),
			URL:          url,
			JobType:      strings.ToLower(item.Get("employmentType").String()),
			Salary:       salaryFrom(item.Get("salary.min"), item.Get("salary.max"), item.Get("salary.currency")),
			Requirements: stringArray(item.Get("qualifications")),
			Skills:       stringArray(item.Get("skills")),
		}
	},
}

var indeedSpec = liveSpec{
	source: model.SourceIndeed,
	kind:   model.RecommendationJob,
	path:   "/apisearch",
	params: func(p Profile, apiKey string) map[string]string {
		return map[string]string{"q": keywords(p), "format": "json", "v": "2", "limit": "25", "publisher": apiKey}
	},
	items: "results",
	mapper: func(item gjson.Result) Candidate {
		return Candidate{
			ID:          item.Get("jobkey").String(),
			Title:       item.Get("jobtitle").String(),
			Company:     item.Get("company").String(),
			Location:    item.Get("formattedLocation").String(),
			Description: item.Get("snippet").String(),
			URL:         item.Get("url").String(),
			JobType:     strings.ToLower(item.Get("jobtype").String()),
		}
	},
}

var unstopSpec = liveSpec{
	source: model.SourceUnstop,
	kind:   model.RecommendationJob,
	path:   "/opportunities/search",
	params: func(p Profile, _ string) map[string]string {
		return map[string]string{"keyword": keywords(p), "opportunity": "jobs", "per_page": "25"}
	},
	auth: func(r *resty.Request, apiKey string) {
		r.SetHeader("X-API-Key", apiKey)
	},
	items: "data.data",
	mapper: func(item gjson.Result) Candidate {
		return Candidate{
			ID:          item.Get("id").String(),
			Title:       item.Get("title").String(),
			Company:     item.Get("organisation.name").String(),
			Location:    item.Get("locations.0.city").String(),
			Description: item.Get("details").String(),
			URL:         item.Get("public_url").String(),
			JobType:     strings.ToLower(item.Get("job_detail.type").String()),
			Salary:      salaryFrom(item.Get("job_detail.min_salary"), item.Get("job_detail.max_salary"), item.Get("job_detail.currency")),
			Skills:      stringArray(item.Get("required_skills.#.skill")),
		}
	},
}

var courseraSpec = liveSpec{
	source: model.SourceCoursera,
	kind:   model.RecommendationCourse,
	path:   "/courses.v1",
	params: func(p Profile, _ string) map[string]string {
		return map[string]string{
			"q":      "search",
			"query":  keywords(p),
			"limit":  "25",
			"fields": "name,slug,description,workload,level,instructors,avgRating,ratingCount,skills",
		}
	},
	auth:  bearer,
	items: "elements",
	mapper: func(item gjson.Result) Candidate {
		url := ""
		if slug := item.Get("slug").String(); slug != "" {
			url = "https://www.coursera.org/learn/" + slug
		}
		return Candidate{
			ID:          item.Get("id").String(),
			Title:       item.Get("name").String(),
			Provider:    "Coursera",
			Instructor:  item.Get("instructors.0.fullName").String(),
			Description: item.Get("description").String(),
			URL:         url,
			Duration:    item.Get("workload").String(),
			Level:       normalizeLevel(item.Get("level").String()),
			Price:       &Price{Currency: "USD", Free: true},
			Rating:      ratingFrom(item.Get("avgRating"), item.Get("ratingCount")),
			Skills:      stringArray(item.Get("skills")),
		}
	},
}

var udemySpec = liveSpec{
	source: model.SourceUdemy,
	kind:   model.RecommendationCourse,
	path:   "/courses/",
	params: func(p Profile, _ string) map[string]string {
		return map[string]string{"search": keywords(p), "page_size": "25"}
	},
	auth: func(r *resty.Request, apiKey string) {
		// apiKey holds base64(client_id:client_secret)
		r.SetHeader("Authorization", "Basic "+apiKey)
	},
	items: "results",
	mapper: func(item gjson.Result) Candidate {
		url := item.Get("url").String()
		if strings.HasPrefix(url, "/") {
			url = "https://www.udemy.com" + url
		}
		price := &Price{
			Amount:   item.Get("price_detail.amount").Float(),
			Currency: item.Get("price_detail.currency").String(),
			Free:     !item.Get("is_paid").Bool(),
		}
		if price.Currency == "" {
			price.Currency = "USD"
		}
		return Candidate{
			ID:          item.Get("id").String(),
			Title:       item.Get("title").String(),
			Provider:    "Udemy",
			Instructor:  item.Get("visible_instructors.0.display_name").String(),
			Description: item.Get("headline").String(),
			URL:         url,
			Duration:    item.Get("content_info").String(),
			Level:       normalizeLevel(item.Get("instructional_level").String()),
			Price:       price,
			Rating:      ratingFrom(item.Get("rating"), item.Get("num_reviews")),
		}
	},
}

var edxSpec = liveSpec{
	source: model.SourceEdX,
	kind:   model.RecommendationCourse,
	path:   "/search/all/",
	params: func(p Profile, _ string) map[string]string {
		return map[string]string{"q": keywords(p), "content_type": "course", "page_size": "25"}
	},
	auth:  bearer,
	items: "results",
	mapper: func(item gjson.Result) Candidate {
		duration := ""
		if weeks := item.Get("weeks_to_complete").Int(); weeks > 0 {
			duration = fmt.Sprintf("%d weeks", weeks)
		}
		seat := item.Get("seats.0")
		price := &Price{
			Amount:   seat.Get("price").Float(),
			Currency: seat.Get("currency").String(),
			Free:     seat.Get("type").String() == "audit" || seat.Get("price").Float() == 0,
		}
		if price.Currency == "" {
			price.Currency = "USD"
		}
		return Candidate{
			ID:          item.Get("key").String(),
			Title:       item.Get("title").String(),
			Provider:    "edX",
			Instructor:  item.Get("owners.0.name").String(),
			Description: item.Get("short_description").String(),
			URL:         item.Get("marketing_url").String(),
			Duration:    duration,
			Level:       normalizeLevel(item.Get("level_type").String()),
			Price:       price,
			Skills:      stringArray(item.Get("skill_names")),
		}
	},
}

func NewLinkedInLive(baseURL, apiKey string, timeout time.Duration) *LiveAdapter {
	return newLiveAdapter(linkedInSpec, baseURL, apiKey, timeout)
}

func NewIndeedLive(baseURL, apiKey string, timeout time.Duration) *LiveAdapter {
	return newLiveAdapter(indeedSpec, baseURL, apiKey, timeout)
}

func NewUnstopLive(baseURL, apiKey string, timeout time.Duration) *LiveAdapter {
	return newLiveAdapter(unstopSpec, baseURL, apiKey, timeout)
}

func NewCourseraLive(baseURL, apiKey string, timeout time.Duration) *LiveAdapter {
	return newLiveAdapter(courseraSpec, baseURL, apiKey, timeout)
}

func NewUdemyLive(baseURL, apiKey string, timeout time.Duration) *LiveAdapter {
	return newLiveAdapter(udemySpec, baseURL, apiKey, timeout)
}

func NewEdXLive(baseURL, apiKey string, timeout time.Duration) *LiveAdapter {
	return newLiveAdapter(edxSpec, baseURL, apiKey, timeout)
}
