package services

import "aiobackend/internal/models"

// Demo records inserted by POST /api/news/seed for showcase pages.
var seedSamples = []models.NewsCreate{
	{
		TitleEN:  "AIO launches next-gen automation suite",
		TitleAR:  "إطلاق حزمة الأتمتة من الجيل التالي من AIO",
		BodyEN:   "We introduced new AI agents that cut process time by 60%.",
		BodyAR:   "قدمنا وكلاء ذكاء اصطناعي جدد يقلّصون زمن العمليات بنسبة 60٪.",
		Tag:      "Product",
		Featured: true,
		ImageURL: "https://images.unsplash.com/photo-1555949963-aa79dcee981d?q=80&w=1400&auto=format&fit=crop",
	},
	{
		TitleEN:  "AIO partners with leading cloud provider",
		TitleAR:  "شراكة AIO مع مزود سحابي رائد",
		BodyEN:   "This strategic partnership accelerates deployments across MENA.",
		BodyAR:   "هذه الشراكة الإستراتيجية تسرّع عمليات النشر في منطقة الشرق الأوسط وشمال أفريقيا.",
		Tag:      "Press",
		Featured: false,
		ImageURL: "https://images.unsplash.com/photo-1518779578993-ec3579fee39f?q=80&w=1400&auto=format&fit=crop",
	},
	{
		TitleEN:  "ISO 27001 certification achieved",
		TitleAR:  "الحصول على شهادة ISO 27001",
		BodyEN:   "Security remains our top priority as we scale.",
		BodyAR:   "لا تزال الحماية أولويتنا القصوى مع توسعنا.",
		Tag:      "Security",
		Featured: true,
		ImageURL: "https://images.unsplash.com/photo-1556741533-f6acd6477f8e?q=80&w=1400&auto=format&fit=crop",
	},
}
