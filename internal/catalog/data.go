package catalog

import "github.com/Alijeyrad/psyassist_backend/internal/domain/assessment"

var diagnosticTools = []string{
	"WISC-V",
	"WAIS-IV",
	"מבחן וודקוק-ג'ונסון",
	"NEPSY-II",
	"מבחן אליה",
	"VMI",
	"TOVA",
	"CPT-3",
	"מבחן כתיבה",
	"מבחן חשבון",
	"מבחן קריאה",
	"אבחון מודעות פונולוגית",
	"Test of Variables of Attention",
	"Rey Complex Figure",
	"Tower of London",
	"Wisconsin Card Sorting Test",
}

var starterRecommendations = []assessment.Recommendation{
	{ID: "1", Title: "מתן זמן נוסף במבחנים"},
	{ID: "2", Title: "הגדלת גופן בחומרי למידה"},
	{ID: "3", Title: "חלוקת מטלות למקטעים קצרים"},
	{ID: "4", Title: "מתן הפסקות תכופות"},
	{ID: "5", Title: "שימוש בעזרים טכנולוגיים"},
	{ID: "6", Title: "ישיבה בקרבת המורה"},
	{ID: "7", Title: "מתן הוראות בכתב ובעל פה"},
	{ID: "8", Title: "פיתוח אסטרטגיות למידה"},
	{ID: "9", Title: "שיפור מיומנויות ארגון"},
	{ID: "10", Title: "טיפול באמצעות משחק"},
}
